// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package nets defines a concrete type for interval-timed open workflow nets and
provides a Parser for building Nets from the textual TIMENET description
format.

A workflow net is a Place/Transition net in which every transition carries a
closed firing-time interval [eft,lft] (lft may be infinite) and in which some
places are flagged as the interface through which the net exchanges messages,
asynchronously, with an external partner.

The net format

	.timenet                ::= 'TIMENET' <pldecl>? <inputdecl>? <outputdecl>?
	                             <markingdecl>? <trdecl>+ <finaldecl>*
	pldecl                   ::= 'PLACE' (<safedecl>|<freedecl>)*
	safedecl                 ::= 'SAFE' (INT ':')? <name> (',' <name>)* ';'
	freedecl                 ::= <name> (',' <name>)* ';'
	inputdecl                ::= 'INPUT' <name> (',' <name>)* ';'
	outputdecl               ::= 'OUTPUT' <name> (',' <name>)* ';'
	markingdecl              ::= 'MARKING' <atom> (',' <atom>)* ';'
	finaldecl                ::= 'FINALMARKING' <atom> (',' <atom>)* ';'
	atom                     ::= <name> ':' INT
	trdecl                   ::= 'TRANSITION' <name> <timedecl>? <consdecl>? <proddecl>?
	timedecl                 ::= 'TIME' INT ',' (INT|'*') ';'
	consdecl                 ::= 'CONSUME' <atom> (',' <atom>)* ';'
	proddecl                 ::= 'PRODUCE' <atom> (',' <atom>)* ';'
	name                     ::= letter (letter|digit|'_')*

'{' ... '}' delimits a comment, which may appear anywhere whitespace is
allowed. Arc multiplicity is always 1: an atom of a CONSUME or PRODUCE
clause with any other count is rejected. A SAFE declaration with no explicit count defaults to bound 1;
an explicit count of 0 also denotes unbounded. A plain (non-SAFE) place
declaration is unbounded (bound 0). A transition with no TIME clause defaults
to [0,*[, where '*' denotes infinity.

All the files successfully parsed by this package are valid TIMENET files.
(*Net).Fprint writes names and markings as they are: its output can be read
back by Parse when every name is an identifier of the grammar above, the net
has at least one transition, and no final marking is empty. Companion
transitions added by Maximalize have names containing '$', so the text of a
maximal net is not read back.
*/
package nets
