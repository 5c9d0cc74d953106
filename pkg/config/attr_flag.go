package config

import (
	"fmt"
	"sort"
	"strings"
)

// AttrFlags collects repeatable "-attr name=value" command line flags.
// It implements flag.Value. Use an initialized map such as AttrFlags{};
// Set on a nil AttrFlags returns an error.
type AttrFlags map[string]string

// String 返回按名称排序的 name=value 列表
func (a AttrFlags) String() string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + a[name]
	}
	return strings.Join(parts, ",")
}

// Set 解析一个 name=value 对，后出现的同名属性覆盖前者
func (a AttrFlags) Set(s string) error {
	if a == nil {
		return fmt.Errorf("attribute %q: AttrFlags is nil, initialize it with AttrFlags{}", s)
	}
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("attribute %q must have the form name=value", s)
	}
	if !IsObservedAttribute(name) {
		return fmt.Errorf("unknown attribute %q (known: %s)", name, strings.Join(ObservedAttributes(), ", "))
	}
	a[name] = value
	return nil
}
