package api

import (
	"github.com/navigatehome/waypoint/internal/config"
	"github.com/navigatehome/waypoint/pkg/openapi"
)

// buildSpec assembles the OpenAPI document for the API surface. Schemas
// cover the wire types handlers exchange; list endpoints share the page
// envelope.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"filename":     {Type: "string"},
				"content_type": {Type: "string"},
				"size_bytes":   {Type: "integer"},
				"page_count":   {Type: "integer"},
				"form_type":    {Type: "string"},
				"confidence":   {Type: "number"},
				"status":       {Type: "string"},
				"uploaded_at":  {Type: "string", Format: "date-time"},
			},
		},
		"Analysis": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":              {Type: "string", Format: "uuid"},
				"document_id":     {Type: "string", Format: "uuid"},
				"summary":         {Type: "string"},
				"key_information": openapi.SchemaRef("KeyInformation"),
				"recommendations": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"questions_answered": {
					Type:  "array",
					Items: openapi.SchemaRef("AnsweredQuestion"),
				},
				"source":      {Type: "string", Enum: []any{"mock", "live"}},
				"analyzed_at": {Type: "string", Format: "date-time"},
			},
		},
		"KeyInformation": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"form_number":              {Type: "string"},
				"deadlines":                {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"required_documents":       {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"fees":                     {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"eligibility_requirements": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"processing_time":          {Type: "string"},
			},
		},
		"AnsweredQuestion": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"question": {Type: "string"},
				"answer":   {Type: "string"},
			},
		},
		"ServiceRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"question":        {Type: "string"},
				"language":        {Type: "string"},
				"form_type":       {Type: "string"},
				"field_name":      {Type: "string"},
				"field_value":     {Type: "string"},
				"situation":       {Type: "string"},
				"text":            {Type: "string"},
				"target_language": {Type: "string"},
				"query":           {Type: "string"},
				"location":        {Type: "string"},
				"profile":         openapi.SchemaRef("Profile"),
			},
		},
		"ServiceResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"kind":      {Type: "string"},
				"answer":    {Type: "string"},
				"items":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"resources": {Type: "array", Items: openapi.SchemaRef("Resource")},
				"source":    {Type: "string", Enum: []any{"mock", "live"}},
			},
		},
		"Resource": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string"},
				"category":    {Type: "string"},
				"description": {Type: "string"},
				"contact":     {Type: "string"},
			},
		},
		"Profile": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"visa_status":      {Type: "string"},
				"country_of_birth": {Type: "string"},
				"years_in_us":      {Type: "integer"},
				"has_attorney":     {Type: "boolean"},
			},
		},
		"Prompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"name":         {Type: "string"},
				"stage":        {Type: "string"},
				"instructions": {Type: "string"},
				"description":  {Type: "string"},
				"active":       {Type: "boolean"},
			},
		},
		"ChatMessage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"role":       {Type: "string", Enum: []any{"user", "assistant"}},
				"content":    {Type: "string"},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"Error": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"error": {Type: "string"},
			},
		},
	})

	spec.Components.AddResponses(map[string]*openapi.Response{
		"BadRequest": openapi.ResponseJSON("Invalid request", "Error"),
		"NotFound":   openapi.ResponseJSON("Not found", "Error"),
	})

	addDocumentPaths(spec)
	addAnalysisPaths(spec)
	addAssistantPaths(spec)
	addChatPaths(spec)
	addPromptPaths(spec)

	return spec
}

func addDocumentPaths(spec *openapi.Spec) {
	spec.Paths["/documents"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List documents",
			Tags:    []string{"documents"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged documents", "Document"),
			},
		},
		Post: &openapi.Operation{
			Summary: "Upload a document",
			Tags:    []string{"documents"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created document", "Document"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}
	spec.Paths["/documents/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a document",
			Tags:       []string{"documents"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Document", "Document"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete a document",
			Tags:       []string{"documents"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document identifier")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Deleted"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
	spec.Paths["/documents/{id}/download"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Download the stored file",
			Tags:       []string{"documents"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document identifier")},
			Responses: map[int]*openapi.Response{
				200: {Description: "File stream"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addAnalysisPaths(spec *openapi.Spec) {
	spec.Paths["/analyses"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List analyses",
			Tags:    []string{"analyses"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged analyses", "Analysis"),
			},
		},
		Post: &openapi.Operation{
			Summary: "Analyze a document",
			Tags:    []string{"analyses"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Analysis", "Analysis"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
	spec.Paths["/analyses/document/{id}/ask"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Ask a question about a document",
			Tags:       []string{"analyses"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Answer", "ServiceResult"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
	spec.Paths["/analyses/document/{id}/translate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Translate a document summary",
			Tags:       []string{"analyses"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Translation", "ServiceResult"),
			},
		},
	}
	spec.Paths["/analyses/document/{id}/simplify"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Simplify a document",
			Tags:       []string{"analyses"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Plain language rewrite", "ServiceResult"),
			},
		},
	}
}

func addAssistantPaths(spec *openapi.Spec) {
	operations := map[string]string{
		"/assistant/ask":         "Answer an immigration question",
		"/assistant/validate":    "Check a form field value",
		"/assistant/rights":      "Explain rights for a situation",
		"/assistant/emergency":   "Provide an emergency script",
		"/assistant/resources":   "Search community resources",
		"/assistant/eligibility": "Screen likely eligibility",
		"/assistant/insights":    "Share community insights",
		"/assistant/translate":   "Translate text",
	}

	for path, summary := range operations {
		spec.Paths[path] = &openapi.PathItem{
			Post: &openapi.Operation{
				Summary:     summary,
				Tags:        []string{"assistant"},
				RequestBody: openapi.RequestBodyJSON("ServiceRequest", true),
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Result", "ServiceResult"),
					400: openapi.ResponseRef("BadRequest"),
				},
			},
		}
	}

	spec.Paths["/assistant/mode"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Report live or mock operating mode",
			Tags:    []string{"assistant"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Operating mode"},
			},
		},
	}
}

func addChatPaths(spec *openapi.Spec) {
	spec.Paths["/chat/{session}/messages"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Session history",
			Tags:       []string{"chat"},
			Parameters: []*openapi.Parameter{openapi.PathParam("session", "Session identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Messages", "ChatMessage"),
			},
		},
		Post: &openapi.Operation{
			Summary:    "Send a message",
			Tags:       []string{"chat"},
			Parameters: []*openapi.Parameter{openapi.PathParam("session", "Session identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Assistant reply", "ChatMessage"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}
}

func addPromptPaths(spec *openapi.Spec) {
	spec.Paths["/prompts"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List prompt overrides",
			Tags:    []string{"prompts"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged prompts", "Prompt"),
			},
		},
		Post: &openapi.Operation{
			Summary: "Create a prompt override",
			Tags:    []string{"prompts"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Prompt", "Prompt"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}
	spec.Paths["/prompts/{id}/activate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Activate a prompt override for its stage",
			Tags:       []string{"prompts"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Prompt identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Prompt", "Prompt"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}
