package render

// Node is the concrete output of one element construction: an ordered token
// list, an opaque attribute bag, and either text content or child nodes.
// Elements build nodes; the Renderer interprets them. Tokens keep the order
// the element resolved them in, so the renderer's last-occurrence-wins rule
// gives override tokens precedence over computed ones.
type Node struct {
	// Tokens are the resolved style tokens in application order.
	Tokens []string
	// Attrs carries attributes forwarded verbatim from the caller. They never
	// influence styling; the renderer exposes them to whoever asks but does
	// not interpret them.
	Attrs map[string]string
	// Text is the leaf content. Ignored when Children is non-empty.
	Text string
	// Children are nested nodes, laid out by the renderer.
	Children []*Node
}

// Attr returns the forwarded attribute for key, or "" when absent.
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[key]
}

// HasToken reports whether the node's token list contains token at least
// once.
func (n *Node) HasToken(token string) bool {
	if n == nil {
		return false
	}
	for _, t := range n.Tokens {
		if t == token {
			return true
		}
	}
	return false
}
