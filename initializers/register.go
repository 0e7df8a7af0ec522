package initializers

import (
	"math"
	"sort"

	"github.com/pashkovdenis/thoughtmodel"
	"github.com/pkg/errors"
)

// default values, because 'default' is a keyword
var defaultValue map[string]float64

var registry map[string]func(Source) thoughtmodel.Initializer

func init() {
	defaultValue = map[string]float64{
		"uniform-lower": -1,
		"uniform-upper": 1,
		"normal-mean":   0,
		"normal-sd":     1,
		"varscl-factor": 1,
		"trunc-sds":     2,
	}

	registry = map[string]func(Source) thoughtmodel.Initializer{
		"estimate": func(src Source) thoughtmodel.Initializer { return Estimate(src) },
		"he":       func(src Source) thoughtmodel.Initializer { return He(src) },
		"lecun":    func(src Source) thoughtmodel.Initializer { return LeCun(src) },
		"normal":   func(src Source) thoughtmodel.Initializer { return Random(NormalRNG(src)) },
		"uniform":  func(src Source) thoughtmodel.Initializer { return Uniform(src) },
	}

	thoughtmodel.SetDefaultInitializer(Estimate(Global()))
}

// SetDefault sets one of the default values used when constructing Initializers and RNGs. The
// values that can be set are: "uniform-lower", "uniform-upper", "normal-mean", "normal-sd",
// "varscl-factor" and "trunc-sds". Values that are already constructed are unaffected.
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// ByName returns the Initializer registered under name, drawing from src. If src is nil, the
// process-wide source given by Global is used.
func ByName(name string, src Source) (thoughtmodel.Initializer, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("Initializer with name %q does not exist", name)
	}

	if src == nil {
		src = Global()
	}

	return f(src), nil
}

// Names returns the names accepted by ByName, sorted.
func Names() []string {
	ns := make([]string, 0, len(registry))
	for n := range registry {
		ns = append(ns, n)
	}

	sort.Strings(ns)
	return ns
}
