/*
Package vaultchain defines interfaces used throughout the application, such
as storage, transactions, handlers and conditions.

Extensions under x/ implement the vault token, the settlement token and the
escrow registry on top of these building blocks. We pass context through
context.Context between app, middleware, and handlers, and every
extension may add its own keys to enrich the context with specific data.

There should exist two functions for every XYZ of type T
that we want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set
to avoid lower-level modules overwriting the value
(eg. height, chain id).
*/
package vaultchain
