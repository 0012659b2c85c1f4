package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/baaaaaaaka/bootmenu/internal/env"
)

// Keys lists the settable scalar keys in a stable order. Shell variables
// are set with "env.<name>".
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var setters = map[string]func(*Config, string) error{
	"menu.width": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			return fmt.Errorf("menu.width must be an integer between 1 and 200 (got %q)", v)
		}
		c.Menu.Width = n
		return nil
	},
	"menu.abortKey":         boolSetter(func(c *Config, b bool) { c.Menu.AbortKey = b }),
	"menu.logUnhandledKeys": boolSetter(func(c *Config, b bool) { c.Menu.LogUnhandledKeys = b }),
	"menu.splashPath": func(c *Config, v string) error {
		c.Menu.SplashPath = v
		return nil
	},
	"shell.prompt": func(c *Config, v string) error {
		c.Shell.Prompt = v
		return nil
	},
	"shell.allowExec": boolSetter(func(c *Config, b bool) { c.Shell.AllowExec = b }),
	"logFile": func(c *Config, v string) error {
		c.LogFile = v
		return nil
	},
}

func boolSetter(set func(*Config, bool)) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("expected true or false (got %q)", v)
		}
		set(c, b)
		return nil
	}
}

// Set assigns one key. An empty value for "env.<name>" removes the variable.
func (c *Config) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if name, ok := strings.CutPrefix(key, "env."); ok {
		if !env.ValidName(name) {
			return fmt.Errorf("invalid variable name %q", name)
		}
		if value == "" {
			delete(c.Shell.Env, name)
			return nil
		}
		if c.Shell.Env == nil {
			c.Shell.Env = map[string]string{}
		}
		c.Shell.Env[name] = value
		return nil
	}
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s, env.<name>)", key, strings.Join(Keys(), ", "))
	}
	if err := set(c, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}
