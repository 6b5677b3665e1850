package config

import (
	"maps"
	"strconv"

	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	tagNull      = "!!null"
	tagBool      = "!!bool"
	tagInt       = "!!int"
	tagFloat     = "!!float"
	tagString    = "!!str"
	tagTimestamp = "!!timestamp"
)

// document is one decoded configuration document before defaults are applied.
// Nil pointers mean the key was absent. An explicit null or empty type is
// recorded as "" so a later document can switch the cache off.
type document struct {
	ttl       *int
	cacheType *string
	providers []domain.Provider
}

// Validate decodes a single YAML or JSON document and checks it against the schema.
func Validate(data []byte) (*domain.Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config")
	}
	return ValidateNode(&root)
}

// ValidateNode checks an already parsed document against the schema and fills defaults.
func ValidateNode(root *yaml.Node) (*domain.Config, error) {
	doc, err := decodeDocument(root)
	if err != nil {
		return nil, err
	}
	return finalize([]*document{doc})
}

func decodeDocument(root *yaml.Node) (*document, error) {
	doc := &document{}

	node := root
	if node != nil && node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return doc, nil
		}
		node = node.Content[0]
	}
	node = resolve(node)
	if node == nil || node.Kind == 0 || isNull(node) {
		return doc, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, schemaError(domain.ErrInvalidType, "config must be a mapping", "", node)
	}

	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolve(node.Content[i+1])
		if seen[key.Value] {
			return nil, schemaError(domain.ErrDuplicateKey, "key defined twice", key.Value, key)
		}
		seen[key.Value] = true

		switch key.Value {
		case "cache":
			if err := doc.decodeCache(value); err != nil {
				return nil, err
			}
		case "providers":
			providers, err := decodeProviders(value)
			if err != nil {
				return nil, err
			}
			doc.providers = providers
		default:
			return nil, schemaError(domain.ErrUnknownKey, "unrecognized option", key.Value, key)
		}
	}

	return doc, nil
}

func (d *document) decodeCache(node *yaml.Node) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return schemaError(domain.ErrInvalidType, "cache must be a mapping", "cache", node)
	}

	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolve(node.Content[i+1])
		path := "cache." + key.Value

		if seen[key.Value] {
			return schemaError(domain.ErrDuplicateKey, "key defined twice", path, key)
		}
		seen[key.Value] = true

		switch key.Value {
		case "ttl":
			if isNull(value) {
				d.ttl = nil
				continue
			}
			if value.Kind != yaml.ScalarNode || value.Tag != tagInt {
				return schemaError(domain.ErrInvalidType, "ttl must be an integer", path, value)
			}
			var ttl int
			if err := value.Decode(&ttl); err != nil {
				return schemaError(domain.ErrInvalidType, "ttl must be an integer", path, value)
			}
			if ttl < 0 {
				err := schemaError(domain.ErrInvalidType, "ttl must not be negative", path, value)
				return zerr.With(err, "reason", "negative")
			}
			d.ttl = &ttl
		case "type":
			typ := ""
			if !isNull(value) {
				if value.Kind != yaml.ScalarNode || value.Tag != tagString {
					return schemaError(domain.ErrInvalidType, "type must be a string", path, value)
				}
				typ = value.Value
			}
			d.cacheType = &typ
		default:
			return schemaError(domain.ErrUnknownKey, "unrecognized option", path, key)
		}
	}

	return nil
}

func decodeProviders(node *yaml.Node) ([]domain.Provider, error) {
	switch {
	case isNull(node):
		return nil, nil
	case node.Kind == yaml.MappingNode:
		return decodeProviderMap(node)
	case node.Kind == yaml.SequenceNode:
		return decodeProviderList(node)
	default:
		return nil, schemaError(domain.ErrInvalidType, "providers must be a mapping", "providers", node)
	}
}

func decodeProviderMap(node *yaml.Node) ([]domain.Provider, error) {
	providers := make([]domain.Provider, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolve(node.Content[i+1])
		path := "providers." + key.Value

		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, schemaError(domain.ErrInvalidType, "provider name must be a non-empty string", path, key)
		}

		name := key.Value
		if value.Kind == yaml.MappingNode {
			renamed, rest, err := takeName(value, path)
			if err != nil {
				return nil, err
			}
			if renamed != "" {
				name = renamed
			}
			value = rest
		}

		if seen[name] {
			return nil, schemaError(domain.ErrDuplicateKey, "provider defined twice", "providers."+name, key)
		}
		seen[name] = true

		opts, err := decodeOptions(value, "providers."+name)
		if err != nil {
			return nil, err
		}
		providers = append(providers, domain.Provider{Name: name, Options: opts})
	}

	return providers, nil
}

// takeName splits the name key off a provider mapping. It returns "" when the entry has no name.
func takeName(item *yaml.Node, path string) (string, *yaml.Node, error) {
	name := ""
	rest := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: item.Line}

	for j := 0; j+1 < len(item.Content); j += 2 {
		key, value := item.Content[j], resolve(item.Content[j+1])
		if key.Value != "name" {
			rest.Content = append(rest.Content, key, value)
			continue
		}
		if name != "" {
			return "", nil, schemaError(domain.ErrDuplicateKey, "key defined twice", path+".name", key)
		}
		if value.Kind != yaml.ScalarNode || value.Tag != tagString || value.Value == "" {
			return "", nil, schemaError(domain.ErrInvalidType, "provider name must be a non-empty string", path+".name", value)
		}
		name = value.Value
	}

	return name, rest, nil
}

// decodeProviderList accepts the sequence form where each entry names itself with a name key.
func decodeProviderList(node *yaml.Node) ([]domain.Provider, error) {
	providers := make([]domain.Provider, 0, len(node.Content))
	seen := make(map[string]bool, len(node.Content))

	for i, raw := range node.Content {
		item := resolve(raw)
		path := "providers." + strconv.Itoa(i)

		if item.Kind != yaml.MappingNode {
			return nil, schemaError(domain.ErrInvalidType, "provider entry must be a mapping", path, item)
		}

		name, optNodes, err := takeName(item, path)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, schemaError(domain.ErrMissingRequired, "provider entry has no name", path+".name", item)
		}
		if seen[name] {
			return nil, schemaError(domain.ErrDuplicateKey, "provider defined twice", "providers."+name, item)
		}
		seen[name] = true

		opts, err := decodeOptions(optNodes, "providers."+name)
		if err != nil {
			return nil, err
		}
		providers = append(providers, domain.Provider{Name: name, Options: opts})
	}

	return providers, nil
}

func decodeOptions(node *yaml.Node, path string) (domain.Options, error) {
	if isNull(node) {
		return domain.Options{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, schemaError(domain.ErrInvalidType, "provider options must be a mapping", path, node)
	}

	opts := make(domain.Options, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolve(node.Content[i+1])
		optPath := path + "." + key.Value

		if key.Kind != yaml.ScalarNode {
			return nil, schemaError(domain.ErrInvalidType, "option name must be a string", optPath, key)
		}
		if _, ok := opts[key.Value]; ok {
			return nil, schemaError(domain.ErrDuplicateKey, "option defined twice", optPath, key)
		}
		v, err := decodeScalar(value, optPath)
		if err != nil {
			return nil, err
		}
		opts[key.Value] = v
	}

	return opts, nil
}

func decodeScalar(node *yaml.Node, path string) (any, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, schemaError(domain.ErrInvalidType, "option value must be a scalar", path, node)
	}

	switch node.Tag {
	case tagNull:
		return nil, nil
	case tagString, tagTimestamp:
		return node.Value, nil
	case tagBool:
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, schemaError(domain.ErrInvalidType, "invalid boolean", path, node)
		}
		return b, nil
	case tagInt:
		var n int
		if err := node.Decode(&n); err != nil {
			return nil, schemaError(domain.ErrInvalidType, "integer out of range", path, node)
		}
		return n, nil
	case tagFloat:
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, schemaError(domain.ErrInvalidType, "invalid number", path, node)
		}
		return f, nil
	default:
		return nil, schemaError(domain.ErrInvalidType, "unsupported option value", path, node)
	}
}

// finalize merges documents in order and applies defaults.
func finalize(docs []*document) (*domain.Config, error) {
	cfg := &domain.Config{Cache: domain.CacheConfig{TTL: domain.DefaultCacheTTL}}
	index := make(map[string]int)

	for _, doc := range docs {
		if doc.ttl != nil {
			cfg.Cache.TTL = *doc.ttl
		}
		if doc.cacheType != nil {
			cfg.Cache.Type = *doc.cacheType
		}
		for _, p := range doc.providers {
			if i, ok := index[p.Name]; ok {
				maps.Copy(cfg.Providers[i].Options, p.Options)
				continue
			}
			index[p.Name] = len(cfg.Providers)
			cfg.Providers = append(cfg.Providers, domain.Provider{Name: p.Name, Options: p.Options.Clone()})
		}
	}

	if len(cfg.Providers) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingRequired, "at least one provider is required"), "path", "providers")
	}

	return cfg, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == tagNull)
}

func schemaError(kind error, msg, path string, node *yaml.Node) error {
	err := zerr.With(zerr.Wrap(kind, msg), "path", path)
	if node == nil {
		return err
	}
	if node.Kind == yaml.ScalarNode {
		err = zerr.With(err, "value", node.Value)
	}
	return zerr.With(err, "line", node.Line)
}
