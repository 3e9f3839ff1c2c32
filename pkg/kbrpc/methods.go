package kbrpc

import (
	"context"
	"encoding/json"

	"github.com/me/msuite/pkg/model"
	"github.com/me/msuite/pkg/params"
)

// RunCheckM runs a single CheckM subcommand.
func (c *Client) RunCheckM(ctx context.Context, p *params.CheckMInputParams) (*params.CheckMResults, error) {
	return callRecord[params.CheckMResults](ctx, c, MethodRunCheckM, p)
}

// RunCheckMBinFolder runs a CheckM workflow over a bin folder.
func (c *Client) RunCheckMBinFolder(ctx context.Context, p *params.CheckMBinFolderParams) (*params.CheckMResults, error) {
	return callRecord[params.CheckMResults](ctx, c, MethodRunCheckMBinFolder, p)
}

// RunCheckMWorkflow runs a full CheckM workflow.
func (c *Client) RunCheckMWorkflow(ctx context.Context, p *params.CheckMWorkflowParams) (*params.CheckMResults, error) {
	return callRecord[params.CheckMResults](ctx, c, MethodRunCheckMWorkflow, p)
}

// RunCheckMLineageWf runs the lineage workflow on an assembly or binned contigs reference.
func (c *Client) RunCheckMLineageWf(ctx context.Context, p *params.CheckMLineageWfParams) (*params.CheckMLineageWfResult, error) {
	return callRecord[params.CheckMLineageWfResult](ctx, c, MethodRunCheckMLineageWf, p)
}

// Status returns the service status. It needs no token.
func (c *Client) Status(ctx context.Context) (*model.ServiceStatus, error) {
	resp, err := c.Call(ctx, MethodStatus)
	if err != nil {
		return nil, err
	}
	st, err := UnmarshalResult[model.ServiceStatus](resp)
	if err != nil {
		return nil, WrapError(MethodStatus, err)
	}
	return &st, nil
}

// Submit sends any parameter record to the method registered for its kind.
func (c *Client) Submit(ctx context.Context, rec params.Record) (params.Record, error) {
	method, ok := MethodForKind(rec.Kind())
	if !ok {
		return nil, WrapError("submit", params.ErrUnknownKind)
	}
	resp, err := c.Call(ctx, method, rec)
	if err != nil {
		return nil, err
	}
	result, err := params.New(ResultKind(rec.Kind()))
	if err != nil {
		return nil, WrapError(method, err)
	}
	raw, err := UnmarshalResult[json.RawMessage](resp)
	if err != nil {
		return nil, WrapError(method, err)
	}
	if err := result.UnmarshalJSON(raw); err != nil {
		return nil, WrapError(method, err)
	}
	return result, nil
}

// MethodForKind maps a parameter record kind to its service method.
func MethodForKind(kind string) (string, bool) {
	switch kind {
	case params.KindCheckMInput:
		return MethodRunCheckM, true
	case params.KindCheckMBinFolder:
		return MethodRunCheckMBinFolder, true
	case params.KindCheckMWorkflow:
		return MethodRunCheckMWorkflow, true
	case params.KindCheckMLineageWf:
		return MethodRunCheckMLineageWf, true
	default:
		return "", false
	}
}

// ResultKind returns the kind of record a parameter kind's method returns.
func ResultKind(kind string) string {
	if kind == params.KindCheckMLineageWf {
		return params.KindCheckMLineageResult
	}
	return params.KindCheckMResults
}

func callRecord[T any, PT interface {
	*T
	params.Record
}](ctx context.Context, c *Client, method string, p params.Record) (*T, error) {
	resp, err := c.Call(ctx, method, p)
	if err != nil {
		return nil, err
	}
	raw, err := UnmarshalResult[json.RawMessage](resp)
	if err != nil {
		return nil, WrapError(method, err)
	}
	out := new(T)
	if err := PT(out).UnmarshalJSON(raw); err != nil {
		return nil, WrapError(method, err)
	}
	return out, nil
}
