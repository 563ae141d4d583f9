// Package enumset provides named string-enum sets with case-insensitive
// member resolution.
//
//	env := enumset.New("environment", "prod", "preprod", "staging", "dev")
//	env.Resolve("PROD")    // "prod", true
//	env.Contains("qa")     // false
//
// Sets back enum-typed fields, and can be registered globally by name so
// declarations in different packages can share them:
//
//	enumset.Register(env)
//	f := &field.EnumField{Set: enumset.Lookup("environment")}
package enumset
