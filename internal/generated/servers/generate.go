package servers

//go:generate oapi-codegen -config oapi-codegen.yml ../../../api/openapi.yml
