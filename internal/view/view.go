// Package view 把实体渲染成 JSON 树，按调用点给定的规则决定遍历哪些关系边
//
// 规则沿用 serialize_rules 的写法：
//
//	"-signups"                 不输出 signups 及其子树
//	"-signups.activity.signups" 只剪掉嵌套活动的 signups
//	"signups.activity"          加入白名单；白名单非空时只遍历白名单路径上的边
//
// 无论规则如何，同一条边（实体类型 + 边名）在一个分支上只会被遍历一次，
// 因此渲染结果一定是无环的。
package view

import (
	"bytes"
	"encoding/json"
	"strings"
)

type Field struct {
	Key   string
	Value any
}

// Edge 关系边，One 与 Many 二选一
type Edge struct {
	Name   string
	one    Node
	many   []Node
	isMany bool
}

func One(name string, n Node) Edge {
	return Edge{Name: name, one: n}
}

func Many[T Node](name string, items []T) Edge {
	nodes := make([]Node, len(items))
	for i := range items {
		nodes[i] = items[i]
	}
	return Edge{Name: name, many: nodes, isMany: true}
}

type Node interface {
	Kind() string
	Fields() []Field
	Edges() []Edge
}

// Object 保持字段顺序的 JSON 对象
type Object []Field

func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type Rules struct {
	deny  []string
	allow []string
}

func ParseRules(rules ...string) Rules {
	var r Rules
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		switch {
		case rule == "" || rule == "-":
		case strings.HasPrefix(rule, "-"):
			r.deny = append(r.deny, rule[1:])
		default:
			r.allow = append(r.allow, rule)
		}
	}
	return r
}

// With 合并两组规则
func (r Rules) With(other Rules) Rules {
	return Rules{
		deny:  append(append([]string(nil), r.deny...), other.deny...),
		allow: append(append([]string(nil), r.allow...), other.allow...),
	}
}

// under 判断 path 是否等于 prefix 或位于 prefix 子树中
func under(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+".")
}

func (r Rules) Excluded(path string) bool {
	for _, d := range r.deny {
		if under(path, d) {
			return true
		}
	}
	return false
}

func (r Rules) traversable(path string) bool {
	if r.Excluded(path) {
		return false
	}
	if len(r.allow) == 0 {
		return true
	}
	for _, a := range r.allow {
		// 白名单路径的祖先需要放行才能走到白名单路径本身
		if under(path, a) || under(a, path) {
			return true
		}
	}
	return false
}

func Render(n Node, rules Rules) Object {
	return render(n, rules, "", map[string]bool{})
}

func RenderAll[T Node](items []T, rules Rules) []Object {
	out := make([]Object, 0, len(items))
	for _, it := range items {
		out = append(out, Render(it, rules))
	}
	return out
}

func render(n Node, rules Rules, prefix string, seen map[string]bool) Object {
	var obj Object
	for _, f := range n.Fields() {
		if rules.Excluded(join(prefix, f.Key)) {
			continue
		}
		obj = append(obj, f)
	}

	for _, e := range n.Edges() {
		path := join(prefix, e.Name)
		edgeKey := n.Kind() + "." + e.Name
		if seen[edgeKey] || !rules.traversable(path) {
			continue
		}
		seen[edgeKey] = true

		if e.isMany {
			children := make([]Object, 0, len(e.many))
			for _, child := range e.many {
				children = append(children, render(child, rules, path, seen))
			}
			obj = append(obj, Field{Key: e.Name, Value: children})
		} else if e.one != nil {
			obj = append(obj, Field{Key: e.Name, Value: render(e.one, rules, path, seen)})
		}

		delete(seen, edgeKey)
	}

	if obj == nil {
		obj = Object{}
	}
	return obj
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
