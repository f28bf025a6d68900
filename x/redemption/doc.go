/*
Package redemption implements the escrow registry.

A vault token owner deposits the token into the registry with
CreateEscrowMsg. An authorized offerer then attaches a price and an expiry
with OfferEscrowMsg. The depositor can either take the token back with
CancelEscrowMsg, at any time, or accept the offer with RedeemEscrowMsg,
repeating the offered terms. Redemption pays the price from
RegistryAccount to the depositor and gives the token to the offerer.

An asset has at most one active record. Both cancel and redeem clear it.

The registry works on an OwnershipLedger and a SettlementLedger that are
injected in RegisterRoutes. RegistryAccount must be a pre-authorized
operator of the ownership ledger.
*/
package redemption
