/*
Package style holds the value types of styling: property identifiers, raw
property values, resolved declarations and immutable declaration sets.

Declarations are produced by a cascade resolver outside of this module. The
styling core caches declaration sets and hands them back to clients; it
never interprets property values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style
