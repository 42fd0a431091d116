package http

import "replypilot/internal/reply"

// generateResp is the outbound JSON body for a generated reply.
type generateResp struct {
	Reply    string `json:"reply"`
	Engine   string `json:"engine"`
	Language string `json:"language"`
}

func newGenerateResp(out reply.GenerateOutput) generateResp {
	return generateResp{
		Reply:    out.Reply,
		Engine:   out.Engine,
		Language: string(out.Language),
	}
}
