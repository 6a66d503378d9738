/*
Package domain contains the core models shared by the resolver and its hosts.

It is kept free of I/O: value sources live in the adapters packages and
presentation lives in the CLI.

# Key Entities

  - Binding: the variable a schema leaf reads, worked out before any lookup.
  - VariableEvent: the outcome of resolving one leaf.
  - LifecycleHooks: callbacks receiving those events.
*/
package domain
