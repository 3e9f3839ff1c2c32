package server

import (
	"net/http"

	"github.com/me/msuite/pkg/kbrpc"
)

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	RPCMethods  []string       `json:"rpc_methods"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	respondOK(w, r, discoveryResponse{
		Name:        "msuite API",
		Version:     "v1",
		Description: "CheckM parameter records: JSON-RPC submission, schema discovery and validation",
		RPCMethods: []string{
			kbrpc.MethodRunCheckM,
			kbrpc.MethodRunCheckMBinFolder,
			kbrpc.MethodRunCheckMWorkflow,
			kbrpc.MethodRunCheckMLineageWf,
			kbrpc.MethodStatus,
		},
		Endpoints: []endpointInfo{
			{"/rpc", []string{"POST"}, "KBase JSON-RPC 1.1 endpoint for the kb_Msuite methods"},
			{"/api/v1/params", []string{"GET"}, "List parameter record kinds with their declared fields"},
			{"/api/v1/params/{kind}", []string{"GET"}, "Declared fields of one record kind"},
			{"/api/v1/params/{kind}/validate", []string{"POST"}, "Normalize and validate a record without running it. Accepts ?defaults=false"},
			{"/api/v1/runs", []string{"GET"}, "Recorded run calls, newest first. Accepts ?limit, ?offset, ?state and ?kind"},
			{"/api/v1/runs/{id}", []string{"GET"}, "One recorded run with its params and result"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
		},
	})
}
