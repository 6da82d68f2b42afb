package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// 测试用的最小实体：parent 1..n child，child 反向指回 parent
type parent struct {
	id       int
	children []child
}

type child struct {
	id     int
	parent *parent
}

func (parent) Kind() string { return "parent" }

func (p parent) Fields() []Field { return []Field{{Key: "id", Value: p.id}} }

func (p parent) Edges() []Edge { return []Edge{Many("children", p.children)} }

func (child) Kind() string { return "child" }

func (c child) Fields() []Field {
	return []Field{{Key: "id", Value: c.id}, {Key: "secret", Value: "x"}}
}

func (c child) Edges() []Edge {
	if c.parent == nil {
		return nil
	}
	return []Edge{One("parent", *c.parent)}
}

// cyclic 构造 parent <-> child 互相引用的图
func cyclic() parent {
	p := &parent{id: 1}
	p.children = []child{{id: 10, parent: p}, {id: 11, parent: p}}
	return *p
}

func toMap(t *testing.T, o Object) map[string]any {
	t.Helper()
	b, err := json.Marshal(o)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestRenderBreaksCyclesWithoutRules(t *testing.T) {
	m := toMap(t, Render(cyclic(), ParseRules()))

	children := m["children"].([]any)
	require.Len(t, children, 2)
	first := children[0].(map[string]any)
	require.EqualValues(t, 10, first["id"])

	// children.parent 可以出现一次，但 parent 不能再次展开 children
	back := first["parent"].(map[string]any)
	require.EqualValues(t, 1, back["id"])
	require.NotContains(t, back, "children")
}

func TestRenderDenyEdge(t *testing.T) {
	m := toMap(t, Render(cyclic(), ParseRules("-children")))
	require.Equal(t, map[string]any{"id": float64(1)}, m)
}

func TestRenderDenyNestedEdgeAndField(t *testing.T) {
	m := toMap(t, Render(cyclic(), ParseRules("-children.parent", "-children.secret")))
	for _, c := range m["children"].([]any) {
		cm := c.(map[string]any)
		require.NotContains(t, cm, "parent")
		require.NotContains(t, cm, "secret")
		require.Contains(t, cm, "id")
	}
}

func TestRenderAllowList(t *testing.T) {
	p := cyclic()
	c := p.children[0]

	m := toMap(t, Render(c, ParseRules("parent")))
	require.Contains(t, m, "parent")

	m = toMap(t, Render(p, ParseRules("other")))
	require.NotContains(t, m, "children")
}

func TestRenderEmptyManyIsEmptyList(t *testing.T) {
	b, err := json.Marshal(Render(parent{id: 2}, ParseRules()))
	require.NoError(t, err)
	require.JSONEq(t, `{"id":2,"children":[]}`, string(b))
}

func TestObjectKeepsFieldOrder(t *testing.T) {
	b, err := json.Marshal(Object{{Key: "z", Value: 1}, {Key: "a", Value: "b"}})
	require.NoError(t, err)
	require.Equal(t, `{"z":1,"a":"b"}`, string(b))
}

func TestRulesWith(t *testing.T) {
	r := ParseRules("-a").With(ParseRules("-b.c", " "))
	require.True(t, r.Excluded("a"))
	require.True(t, r.Excluded("a.x"))
	require.True(t, r.Excluded("b.c"))
	require.False(t, r.Excluded("b"))
	require.False(t, r.Excluded("ab"))
}

func TestRenderAll(t *testing.T) {
	out := RenderAll([]parent{{id: 1}, {id: 2}}, ParseRules("-children"))
	require.Len(t, out, 2)
	v, ok := out[1].Get("id")
	require.True(t, ok)
	require.Equal(t, 2, v)
}
