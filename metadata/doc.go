// Package metadata provides an in-memory token table for the cil codec.
//
// A Table maps metadata tokens to members and back, and keeps a user-string
// heap so ldstr operands can be decoded and encoded. It implements both
// cil.MetadataResolver and cil.MetadataBuilder:
//
//	table := metadata.NewTable(metadata.DefaultOptions())
//	tok, _ := table.Append(cil.TableMemberRef, method)
//
//	body, err := cil.ReadMethodBody(data, table)
//	...
//	out, err := body.Bytes(table)
//
// # Tokens
//
// Members registered with Add keep their token. Append assigns the next free
// row id of a table. Members are used as map keys and must be comparable,
// which pointer types always are.
//
// # User Strings
//
// Strings get offsets in a #US-shaped heap the first time they are seen,
// either through AddString or through StringToken while encoding. SetString
// pins a literal to a token read from a real assembly.
//
// # Placeholders
//
// With Options.Placeholders set, any member token with a non-zero row id
// resolves to a *Ref carrying that token, so a body can be decoded and
// re-encoded without knowing its module:
//
//	table := metadata.NewTable(metadata.Options{Placeholders: true})
//
// # Observers
//
// Register observers to follow table changes:
//
//	table.Subscribe(myObserver)
//
// All methods are safe for concurrent use.
package metadata
