package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Name   string
	Email  string
	Active bool
}

var itemFilter = Filter[item]{
	Tag:    func(i item) string { return ActiveTag(i.Active) },
	Fields: []func(item) string{func(i item) string { return i.Name }, func(i item) string { return i.Email }},
}

func sampleItems() []item {
	return []item{
		{Name: "Asha Rao", Email: "asha@fleet.io", Active: true},
		{Name: "Ben Ortiz", Email: "ben@fleet.io", Active: false},
		{Name: "Chen Li", Email: "chen@cabs.io", Active: true},
	}
}

func TestFilterAllEmptyReturnsEverythingInOrder(t *testing.T) {
	items := sampleItems()
	assert.Equal(t, items, itemFilter.Apply(items, "all", ""))
	assert.Equal(t, items, itemFilter.Apply(items, "", "  "))
}

func TestFilterIsPure(t *testing.T) {
	items := sampleItems()
	before := sampleItems()

	first := itemFilter.Apply(items, "active", "IO")
	second := itemFilter.Apply(items, "active", "IO")

	assert.Equal(t, first, second)
	assert.Equal(t, before, items)
}

func TestFilterByTagAndQuery(t *testing.T) {
	items := sampleItems()

	active := itemFilter.Apply(items, "Active", "")
	assert.Len(t, active, 2)

	inactive := itemFilter.Apply(items, "inactive", "")
	assert.Equal(t, []item{items[1]}, inactive)

	cabs := itemFilter.Apply(items, "all", "CABS")
	assert.Equal(t, []item{items[2]}, cabs)

	none := itemFilter.Apply(items, "inactive", "cabs")
	assert.Empty(t, none)
}

func TestToggleVerb(t *testing.T) {
	assert.Equal(t, "enable", ToggleVerb(true))
	assert.Equal(t, "disable", ToggleVerb(false))
}
