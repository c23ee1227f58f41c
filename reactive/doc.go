/*
Package reactive implements minimal reactive value sources.

A Source notifies subscribers synchronously whenever its value changes.
Subscriptions are explicit handles; unsubscribing is idempotent and a
subscription obtained from a released source is inert.

There is no internal locking: sources are meant to be used from the single
thread that drives styling.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reactive

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.reactive'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.reactive")
}
