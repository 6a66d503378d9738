/*
Package ports defines the driven ports (interfaces) of the resolver.

These interfaces decouple the resolution engine from where values come from,
allowing the same schema to be resolved against the process environment,
.env files, structured files or test fixtures.

# Key Interfaces

  - ValueSource: Supplies the raw value of a variable by name.
*/
package ports
