package config

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// EnvPrefix is the prefix of every environment variable read by ApplyEnv.
const EnvPrefix = "PARSEBUF_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from PARSEBUF_* variables:
//
//	PARSEBUF_ENCODING        input.encoding
//	PARSEBUF_CHUNK_SIZE      input.chunk_size
//	PARSEBUF_MAX_SNAPSHOTS   driver.max_snapshots
//	PARSEBUF_VERIFY          driver.verify
//	PARSEBUF_VERIFY_WORKERS  driver.verify_workers
//	PARSEBUF_GRAPHEMES       driver.graphemes
//	PARSEBUF_LOG_LEVEL       logging.level
//
// Empty values count as set. Variables that fail to parse are reported
// together and leave their setting unchanged.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	var errs error

	strs := map[string]*string{
		"ENCODING":  &c.Input.Encoding,
		"LOG_LEVEL": &c.Logging.Level,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"CHUNK_SIZE":     &c.Input.ChunkSize,
		"MAX_SNAPSHOTS":  &c.Driver.MaxSnapshots,
		"VERIFY_WORKERS": &c.Driver.VerifyWorkers,
	}
	for name, dst := range ints {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "%s%s", EnvPrefix, name))
			continue
		}
		*dst = n
	}

	bools := map[string]*bool{
		"VERIFY":    &c.Driver.Verify,
		"GRAPHEMES": &c.Driver.Graphemes,
	}
	for name, dst := range bools {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "%s%s", EnvPrefix, name))
			continue
		}
		*dst = b
	}

	return errs
}
