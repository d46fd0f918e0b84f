package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// intList is a flag.Value holding comma-separated integers, e.g. "2,4,1".
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	var out []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return errors.Wrapf(err, "invalid size %q", part)
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
