package stegano
import (
	"fmt"
	"sort"
	"sync"
)

/*
 * the channel registry. a channel hides an opaque payload inside a
 * visible carrier text and recovers it later; callers pick one by name,
 * so applications can register their own channels next to the built-in
 * ones.
 */

type Channel interface {
	// Hide embeds payload into carrier and returns the combined text.
	Hide( carrier string, payload []byte ) (string, error)
	// Reveal extracts a payload hidden by the same channel.
	Reveal( text string ) ([]byte, error)
	// Capacity is an upper bound, in bytes, on what Hide is guaranteed
	// to embed into carrier.
	Capacity( carrier string ) int
}

var (
	mtx		sync.Mutex
	channels	= map[string]Channel{}
)

func Register( name string, c Channel ) error {
	mtx.Lock()
	defer mtx.Unlock()
	if _, ok := channels[ name ]; ok {
		return fmt.Errorf("Channel %q is already registered", name)
	}
	channels[ name ] = c
	return nil
}

func Lookup( name string ) (Channel, error) {
	mtx.Lock()
	defer mtx.Unlock()
	c, ok := channels[ name ]
	if ok == false {
		return nil, fmt.Errorf("Unknown channel %q", name)
	}
	return c, nil
}

// names of all registered channels, sorted.
func Channels() []string {
	mtx.Lock()
	defer mtx.Unlock()
	names := []string{}
	for name := range channels {
		names = append( names, name )
	}
	sort.Strings( names )
	return names
}

func Hide( channel, carrier string, payload []byte ) (string, error) {
	c, err := Lookup( channel )
	if err != nil {
		return "", err
	}
	return c.Hide( carrier, payload )
}

func Reveal( channel, text string ) ([]byte, error) {
	c, err := Lookup( channel )
	if err != nil {
		return nil, err
	}
	return c.Reveal( text )
}
