/*
Package token implements a minimal fungible token ledger with ERC-20
semantics: balances, transfers and spending allowances.

It is the settlement ledger of the chain. Vault mint fees are collected
through allowances and redemption payouts are paid with plain transfers.
*/
package token
