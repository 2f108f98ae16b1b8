package models

import "strings"

// normalizeName trims a person or genre name. An empty result means "unset".
func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

type Actor struct {
	Name string `json:"name"`
}

func NewActor(name string) Actor { return Actor{Name: normalizeName(name)} }

func (a Actor) IsSet() bool           { return a.Name != "" }
func (a Actor) Less(other Actor) bool { return a.Name < other.Name }
func (a Actor) String() string        { return "<Actor " + a.Name + ">" }

type Director struct {
	Name string `json:"name"`
}

func NewDirector(name string) Director { return Director{Name: normalizeName(name)} }

func (d Director) IsSet() bool              { return d.Name != "" }
func (d Director) Less(other Director) bool { return d.Name < other.Name }
func (d Director) String() string           { return "<Director " + d.Name + ">" }

type Genre struct {
	Name string `json:"name"`
}

func NewGenre(name string) Genre { return Genre{Name: normalizeName(name)} }

func (g Genre) IsSet() bool           { return g.Name != "" }
func (g Genre) Less(other Genre) bool { return g.Name < other.Name }
func (g Genre) String() string        { return "<Genre " + g.Name + ">" }
