/*
Package x contains the shared pieces of the extensions.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together to construct the application.
The token, vault and redemption extensions only depend on each
other through small interfaces, and on the Authenticator defined
here to decide who signed a transaction.
*/
package x
