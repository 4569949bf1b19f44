// Package initval loads named, typed configuration parameters for one
// application from a PostgreSQL table and exposes them as a name to
// typed-value mapping. Each load is a single synchronous round trip: the
// connection is opened, the application's rows are fetched and coerced,
// and the connection is closed again. Nothing is cached across loads and
// nothing is ever written back.
package initval

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/groblegark/initval/dbconf"
	"github.com/groblegark/initval/internal/store"
	"github.com/groblegark/initval/internal/store/postgres"
	"github.com/groblegark/initval/param"
)

// minAppNameLen is the minimum accepted application name length, checked
// before any database call.
const minAppNameLen = 5

type options struct {
	debug   bool
	iniFile string
	section string
	store   store.Store
}

// Option configures construction of a Configuration.
type Option func(*options)

// WithDebug selects the debug parameter partition instead of production.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithINIFile sets the connection parameter file path.
func WithINIFile(path string) Option {
	return func(o *options) { o.iniFile = path }
}

// WithSection sets the section of the connection parameter file.
func WithSection(name string) Option {
	return func(o *options) { o.section = name }
}

// WithStore injects a backing store, bypassing the INI file and the
// PostgreSQL connection. The store is still closed when loading finishes.
func WithStore(st store.Store) Option {
	return func(o *options) { o.store = st }
}

// Configuration holds the aggregated parameter set for one application
// and debug partition. It is immutable after construction.
type Configuration struct {
	app    string
	debug  bool
	values map[string]param.Value
}

// New validates the application name, fetches its parameter rows, and
// coerces them into a Configuration. Any failure aborts construction;
// there is no partially usable instance.
func New(appName string, opts ...Option) (*Configuration, error) {
	return NewContext(context.Background(), appName, opts...)
}

// NewContext is New with a caller-supplied context for the database
// round trips.
func NewContext(ctx context.Context, appName string, opts ...Option) (*Configuration, error) {
	o := options{
		iniFile: dbconf.DefaultFile,
		section: dbconf.DefaultSection,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// Length check runs before any I/O.
	if len(appName) < minAppNameLen {
		return nil, &InvalidAppNameError{Name: appName}
	}

	st := o.store
	if st == nil {
		params, err := dbconf.Load(o.iniFile, o.section)
		if err != nil {
			return nil, err
		}
		ps, err := postgres.Open(dbconf.DSN(params))
		if err != nil {
			return nil, err
		}
		st = ps
	}
	defer st.Close()

	known, err := st.AppNames(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(known, appName) {
		return nil, &UnknownAppError{Name: appName, Known: known}
	}

	rows, err := st.Rows(ctx, appName, o.debug)
	if err != nil {
		return nil, err
	}
	values := make(map[string]param.Value, len(rows))
	for _, row := range rows {
		p, err := param.Extract(row)
		if err != nil {
			return nil, err
		}
		// Duplicate names within one fetch: last row wins. The backing
		// schema is expected to enforce uniqueness per (id, name,
		// debugmode).
		values[p.Name] = p.Value
	}

	return &Configuration{app: appName, debug: o.debug, values: values}, nil
}

// App returns the validated application name.
func (c *Configuration) App() string { return c.app }

// Debug reports which parameter partition was loaded.
func (c *Configuration) Debug() bool { return c.debug }

// Len returns the number of loaded parameters.
func (c *Configuration) Len() int { return len(c.values) }

// Names returns the loaded parameter names, sorted ascending.
func (c *Configuration) Names() []string {
	names := make([]string, 0, len(c.values))
	for name := range c.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the typed value of a parameter, or an *AttributeError when
// the name is unknown.
func (c *Configuration) Get(name string) (param.Value, error) {
	v, ok := c.values[name]
	if !ok {
		return param.Value{}, &AttributeError{Name: name}
	}
	return v, nil
}

// MustGet is Get but panics on unknown names. Intended for parameters
// the caller has already confirmed via Names.
func (c *Configuration) MustGet(name string) param.Value {
	v, err := c.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns a string parameter by name.
func (c *Configuration) String(name string) (string, error) {
	v, err := c.Get(name)
	if err != nil {
		return "", err
	}
	s, ok := v.AsString()
	if !ok {
		return "", &KindMismatchError{Name: name, Want: param.KindString, Got: v.Kind()}
	}
	return s, nil
}

// Int returns an integer parameter by name.
func (c *Configuration) Int(name string) (int64, error) {
	v, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.AsInt()
	if !ok {
		return 0, &KindMismatchError{Name: name, Want: param.KindInt, Got: v.Kind()}
	}
	return n, nil
}

// Float returns a float parameter by name.
func (c *Configuration) Float(name string) (float64, error) {
	v, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0, &KindMismatchError{Name: name, Want: param.KindFloat, Got: v.Kind()}
	}
	return f, nil
}

// Bool returns a boolean parameter by name.
func (c *Configuration) Bool(name string) (bool, error) {
	v, err := c.Get(name)
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, &KindMismatchError{Name: name, Want: param.KindBool, Got: v.Kind()}
	}
	return b, nil
}

// StringList returns a string-list parameter by name.
func (c *Configuration) StringList(name string) ([]string, error) {
	v, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	s, ok := v.AsStringList()
	if !ok {
		return nil, &KindMismatchError{Name: name, Want: param.KindStringList, Got: v.Kind()}
	}
	return s, nil
}

// IntList returns an integer-list parameter by name.
func (c *Configuration) IntList(name string) ([]int64, error) {
	v, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	n, ok := v.AsIntList()
	if !ok {
		return nil, &KindMismatchError{Name: name, Want: param.KindIntList, Got: v.Kind()}
	}
	return n, nil
}

// FloatList returns a float-list parameter by name.
func (c *Configuration) FloatList(name string) ([]float64, error) {
	v, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	f, ok := v.AsFloatList()
	if !ok {
		return nil, &KindMismatchError{Name: name, Want: param.KindFloatList, Got: v.Kind()}
	}
	return f, nil
}

// Date returns a date parameter by name.
func (c *Configuration) Date(name string) (time.Time, error) {
	v, err := c.Get(name)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.AsDate()
	if !ok {
		return time.Time{}, &KindMismatchError{Name: name, Want: param.KindDate, Got: v.Kind()}
	}
	return t, nil
}
