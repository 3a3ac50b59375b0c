// Package tree discovers the configuration files common to two directory
// trees.
//
// Files are matched across trees by base name only; the directory a file
// sits in is irrelevant for pairing, so a left tree's conf/db.cfg pairs
// with a right tree's backup/db.cfg. Only files carrying the configured
// extension (default "cfg", matched case-insensitively) participate.
package tree
