/*
Package persistent is the home of immutable persistent data structures. It does not
contain code itself; see sub-package list.

Immutable persistent data structures can be "modified" efficiently, leaving the
original unchanged. Functional programming languages like Lisp have long relied on
them. *Persistent* immutable data structures offer structural sharing: if two of
them are mostly copies of each other, most of the memory they take up is shared
between them. This makes creating modified copies cheap in terms of space- and
time-complexity.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package persistent
