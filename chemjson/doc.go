package chemjson

//Package chemjson implements the serialization of gobonds molecules
//into a JSON document meant for programs that render or analyze the
//result of the bond perception, which can be written in languages
//other than Go. The document carries, for each atom, its element,
//position, covalent radius and display colour, and for each bond the
//indexes of its atoms, its length and its midpoint. A document can be
//decoded back into the records needed to build the molecule again.
