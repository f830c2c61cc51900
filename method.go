package zapix

// Params holds named arguments for a remote method.
type Params map[string]interface{}

// Invoke calls "<namespace>.<verb>" with either positional or named
// arguments. The RPC surface of a Zabbix server is open-ended, so this
// generic entry point is what every convenience wrapper is sugar for.
func (c *Client) Invoke(namespace, verb string, positional []interface{}, named Params) (interface{}, error) {
	return c.Object(namespace).Method(verb).CallWith(positional, named)
}

// Object returns a handle on one remote object (ie: "host").
func (c *Client) Object(name string) *Object {
	return &Object{name: name, client: c}
}

// Object is a handle on a remote object, used to reach its methods.
type Object struct {
	name   string
	client *Client
}

// Method binds one method of the object (ie: "get") to the owning
// client, as the fully qualified name "object.method".
func (o *Object) Method(verb string) *Method {
	return &Method{method: o.name + "." + verb, client: o.client}
}

// Method is a callable reference to one fully qualified remote method.
type Method struct {
	method string
	client *Client
}

// Name returns the fully qualified method name, as sent on the wire.
func (m *Method) Name() string { return m.method }

// Call invokes the method with positional arguments and returns the
// result member of the response.
func (m *Method) Call(args ...interface{}) (interface{}, error) {
	return m.CallWith(args, nil)
}

// CallNamed invokes the method with named arguments.
func (m *Method) CallNamed(params Params) (interface{}, error) {
	return m.CallWith(nil, params)
}

// CallWith invokes the method with whichever argument kind is given.
// Passing both kinds is caller misuse and fails with ErrInvalidCall
// before anything reaches the wire.
func (m *Method) CallWith(positional []interface{}, named Params) (interface{}, error) {
	if len(positional) > 0 && len(named) > 0 {
		return nil, ErrInvalidCall
	}
	var params interface{}
	switch {
	case len(positional) > 0:
		params = positional
	case len(named) > 0:
		params = named
	}
	return m.client.Do(m.method, params)
}
