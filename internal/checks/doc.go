// Package checks provides the built-in checks.
//
// # Available Checks
//
//	┌─────────────────────────────┬──────────────────────────────────────────────┐
//	│ Type                        │ Reports                                      │
//	├─────────────────────────────┼──────────────────────────────────────────────┤
//	│ naming.MemberNameCheck      │ field names not matching format              │
//	│ naming.ConstantNameCheck    │ constant names not matching format           │
//	│ sizes.ParameterNumberCheck  │ methods with more than max parameters        │
//	│ sizes.FileLengthCheck       │ files longer than max lines                  │
//	│ coding.IllegalCatchCheck    │ catch clauses of overly broad types          │
//	│ UncommentedMainCheck        │ main functions outside the main package      │
//	│ javadoc.JavadocTypeCheck    │ type declarations without a doc comment      │
//	└─────────────────────────────┴──────────────────────────────────────────────┘
//
// Every check also accepts the id and severity properties described in
// package registry.
package checks
