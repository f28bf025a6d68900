/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object, loaded from the "conf"
section of the genesis file and stored under the "_c:<package>" key.
Extensions that allow an administrator to change their configuration load,
modify and save it again from their own handlers.
*/
package gconf
