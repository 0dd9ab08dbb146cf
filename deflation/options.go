// SPDX-License-Identifier: MIT

package deflation

import "github.com/go-logr/logr"

// Option configures a Deflator.
type Option func(*options)

type options struct {
	nSamples int // 0 = no compressed shadow
	log      logr.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCompression keeps a compressed shadow of nSamples rows.
// Panics if nSamples <= 0.
func WithCompression(nSamples int) Option {
	if nSamples <= 0 {
		panic("deflation: WithCompression requires nSamples > 0")
	}

	return func(o *options) { o.nSamples = nSamples }
}

// WithLogger sets the logger; the zero logr.Logger is replaced by logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		if log.GetSink() == nil {
			log = logr.Discard()
		}
		o.log = log
	}
}
