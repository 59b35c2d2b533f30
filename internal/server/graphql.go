// GraphQL support mirrors pkg/graphql/schema.go and
// pkg/graphql/handler.go's shape: a single schema built from the
// Server's dependencies, served as a POST handler that always returns
// 200 (errors travel in the GraphQL "errors" array, per the library's
// own convention, which also matches spec §7's always-200 contract).
package server

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
)

func (s *Server) buildGraphQLSchema() (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"query": &graphql.Field{
				Type:        graphql.NewList(graphql.Int),
				Description: "Documents matching query_str, ranked and paginated the same way POST /query is.",
				Args: graphql.FieldConfigArgument{
					"query_str": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"limit":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"offset":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					queryStr, _ := p.Args["query_str"].(string)
					limit, _ := p.Args["limit"].(int)
					offset, _ := p.Args["offset"].(int)

					docs, err := runQuery(s.tokenizer, s.scorer, queryStr, limit, offset)
					if err != nil {
						return nil, err
					}
					return docs, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// handleGraphQL implements POST /graphql.
func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	var req graphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"errors": []map[string]string{{"message": "invalid request body"}},
		})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         s.graphqlSchema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK) // GraphQL errors still return 200, matching spec §7
	json.NewEncoder(w).Encode(result)
}
