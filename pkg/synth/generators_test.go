/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generators_test.go
Description: Tests for each template generator and the default priority order.
*/

package synth_test

import (
	"testing"

	"github.com/kleascm/regsynth/pkg/synth"
	"github.com/stretchr/testify/assert"
)

func TestDefaultGeneratorOrder(t *testing.T) {
	var names []string
	for _, g := range synth.DefaultGenerators(nil) {
		names = append(names, g.Name())
		assert.NotEmpty(t, g.Description())
	}
	assert.Equal(t, []string{"charclass", "position", "structural", "content", "length"}, names)
}

func TestCharClassGenerator(t *testing.T) {
	g := synth.NewCharClassGenerator()

	tests := []struct {
		name    string
		valid   []string
		invalid []string
		want    []string
	}{
		{"alpha vs digits", []string{"abc", "def"}, []string{"123"}, []string{`^\D+$`, `^\w+$`}},
		{"digits vs alpha", []string{"123"}, []string{"abc"}, []string{`^\d+$`, `^\w+$`}},
		{"word only", []string{"a_1", "b2"}, []string{"a-1"}, []string{`^\w+$`}},
		{"mixed invalid", []string{"abc"}, []string{"123", "x"}, []string{`^\w+$`}},
		{"punctuation", []string{"a b"}, []string{"1"}, nil},
		{"empty valid string", []string{""}, []string{"1"}, nil},
		{"unicode letters", []string{"héllo"}, []string{"42"}, []string{`^\D+$`, `^\w+$`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Generate(tt.valid, tt.invalid))
		})
	}
}

func TestPositionGenerator(t *testing.T) {
	g := synth.NewPositionGenerator()

	tests := []struct {
		name    string
		valid   []string
		invalid []string
		want    []string
	}{
		{"shared first", []string{"aaa", "abb", "acc"}, []string{"bbb"}, []string{`^[a].+$`, `^[a].*$`}},
		{"shared last", []string{"abc1", "bbb1"}, []string{"abc"}, []string{`^.+[1]$`, `^.*[1]$`}},
		{"both edges", []string{"a1", "ab1"}, []string{"b"}, []string{`^[a].+$`, `^[a].*$`, `^.+[1]$`, `^.*[1]$`}},
		{"invalid shares first", []string{"aaa", "abb"}, []string{"axx"}, nil},
		{"empty strings ignored", []string{"", "ab", "ac"}, []string{"b", ""}, []string{`^[a].+$`, `^[a].*$`}},
		{"all empty", []string{"", ""}, []string{"a"}, nil},
		{"hyphen unescaped", []string{"-a", "-b"}, []string{"a"}, []string{`^[-].+$`, `^[-].*$`}},
		{"bracket escaped", []string{"]x", "]y"}, []string{"x"}, []string{`^[\]].+$`, `^[\]].*$`}},
		{"caret escaped", []string{"x^", "y^"}, []string{"x"}, []string{`^.+[\^]$`, `^.*[\^]$`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Generate(tt.valid, tt.invalid))
		})
	}
}

func TestContentGenerator(t *testing.T) {
	g := synth.NewContentGenerator()

	tests := []struct {
		name    string
		valid   []string
		invalid []string
		want    []string
	}{
		{
			"hyphen both passes",
			[]string{"abc-1", "bbb-1", "cde-1"}, []string{"abc1", "bbb1", "cde1"},
			[]string{`^.+[-].+$`, `^.*[-].*$`, `^.+-.+$`},
		},
		{
			"at sign",
			[]string{"a@b", "c@d"}, []string{"ab"},
			[]string{`^.+[@].+$`, `^.*[@].*$`, `^.+@.+$`},
		},
		{
			"period escaped",
			[]string{"a.b"}, []string{"ab"},
			[]string{`^.+[\.].+$`, `^.*[\.].*$`, `^.+\..+$`},
		},
		{
			"exclusive but not universal",
			[]string{"ax", "by"}, []string{"ab"},
			nil,
		},
		{
			"separator present in one invalid string",
			[]string{"a:b", "c:d"}, []string{"ab", "x:y"},
			nil,
		},
		{
			"non-separator exclusive char",
			[]string{"a#", "#b"}, []string{"ab"},
			[]string{`^.+[#].+$`, `^.*[#].*$`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Generate(tt.valid, tt.invalid))
		})
	}
}

func TestStructuralGenerator(t *testing.T) {
	g := synth.NewStructuralGenerator()

	want := []string{`^\D+@\w+\.\w+$`, `^[^@]+@[^@]+\.[^@]+$`, `^\w+@\w+\.\w+$`}
	assert.Equal(t, want, g.Generate([]string{"foo@abc.com", "bar@def.net"}, []string{"x"}))

	// every shape is emitted even when it cannot separate the sets
	assert.Equal(t, want, g.Generate([]string{"a@b.c"}, []string{"a@b.c"}))

	assert.Nil(t, g.Generate([]string{"a@b", "c.d"}, nil))
	assert.Nil(t, g.Generate(nil, nil))

	// callers may not corrupt the shared shapes
	got := g.Generate([]string{"a@b.c"}, nil)
	got[0] = "mutated"
	assert.Equal(t, want, g.Generate([]string{"a@b.c"}, nil))
}

func TestLengthGenerator(t *testing.T) {
	exact := synth.NewLengthGenerator(false)
	ranged := synth.NewLengthGenerator(true)

	assert.Equal(t, []string{`^.{3}$`}, exact.Generate([]string{"abc", "xyz"}, []string{"ab", "abcd"}))
	assert.Nil(t, exact.Generate([]string{"abc", "xyz"}, []string{"123"}))
	assert.Nil(t, exact.Generate([]string{"ab", "abcd"}, nil))
	assert.Nil(t, exact.Generate(nil, nil))

	// lengths are counted in runes
	assert.Equal(t, []string{`^.{3}$`}, exact.Generate([]string{"héé", "abc"}, []string{"ab"}))

	assert.Equal(t, []string{`^.{2,4}$`}, ranged.Generate([]string{"ab", "abcd"}, []string{"a"}))
	assert.Equal(t, []string{`^.{3}$`}, ranged.Generate([]string{"abc"}, []string{"a"}))
	assert.Contains(t, ranged.Description(), "range")
}
