// Package graphql provides the GraphQL schema definition and resolvers
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/purl-component/component"
	"github.com/ortelius/purl-component/model"
)

// QualifierType defines the GraphQL object for a single PURL qualifier
var QualifierType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Qualifier",
	Fields: graphql.Fields{
		"key": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			q, _ := p.Source.(model.Qualifier)
			return q.Key, nil
		}},
		"value": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			q, _ := p.Source.(model.Qualifier)
			return q.Value, nil
		}},
	},
})

// RuleType defines the GraphQL enum for the rule used to derive a component name
var RuleType = graphql.NewEnum(graphql.EnumConfig{
	Name: "Rule",
	Values: graphql.EnumValueConfigMap{
		"OCI":     &graphql.EnumValueConfig{Value: model.RuleOCI},
		"RPMMOD":  &graphql.EnumValueConfig{Value: model.RuleRPMModule},
		"DEFAULT": &graphql.EnumValueConfig{Value: model.RuleDefault},
	},
})

// ComponentType defines the GraphQL object for a resolved PURL.
// The parsed PURL fields are flattened next to the component name.
var ComponentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Component",
	Fields: graphql.Fields{
		"purl": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, _ := p.Source.(model.Component)
			return c.Purl, nil
		}},
		"component": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, _ := p.Source.(model.Component)
			return c.Component, nil
		}},
		"rule": &graphql.Field{Type: RuleType, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, _ := p.Source.(model.Component)
			return c.Rule, nil
		}},
		"type": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, _ := p.Source.(model.Component)
			return c.Parsed.Type, nil
		}},
		"namespace": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, _ := p.Source.(model.Component)
			return c.Parsed.Namespace, nil
		}},
		"name": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, _ := p.Source.(model.Component)
			return c.Parsed.Name, nil
		}},
		"version": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, _ := p.Source.(model.Component)
			return c.Parsed.Version, nil
		}},
		"subpath": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, _ := p.Source.(model.Component)
			return c.Parsed.Subpath, nil
		}},
		"qualifiers": &graphql.Field{Type: graphql.NewList(QualifierType), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, _ := p.Source.(model.Component)
			return c.Parsed.Qualifiers, nil
		}},
	},
})

// CreateSchema builds the GraphQL schema with the component query
func CreateSchema() (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"component": &graphql.Field{
				Type: ComponentType,
				Args: graphql.FieldConfigArgument{
					"purl": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					purl, _ := p.Args["purl"].(string)
					c, err := component.Resolve(purl)
					if err != nil {
						return nil, err
					}
					return c, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: rootQuery,
	})
}
