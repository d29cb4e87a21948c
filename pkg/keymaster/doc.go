// Package keymaster issues and revokes app keys.
//
// A key is a client id/secret pair bound to an (owner id, owner type) pair.
// The KeyMaster creates keys for resolved owners, destroys them in bulk when
// the owner goes away, and walks keys back to their owners through the
// ownership resolver. Credential material itself is derived by the Signer
// and filled in by a GORM plugin just before the insert, so a key row can
// never be created without credentials regardless of which code path writes
// it.
package keymaster
