/*
Package vault implements the vault NFT: a non fungible token ledger with
a contract owner, an optional paid mint protected by an allow list, and a
set of pre-authorized redeemers that may move any token.

Token ids are allocated sequentially starting at 0. Paid mints charge the
configured fee through the fungible settlement ledger: the payer must
first approve FeeAccount as a spender of at least the fee.

The controller implements the ownership ledger used by the redemption
extension.
*/
package vault
