package captiond

import _ "embed"

//go:embed openapi.yaml
var OpenAPISpec []byte

//go:embed web/docs.html
var DocsPage []byte
