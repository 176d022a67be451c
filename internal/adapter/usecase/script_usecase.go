package usecase

import (
	"context"
	"fmt"
	"strings"

	"affitrack/internal/core/domain"
	"affitrack/internal/core/port"
	"affitrack/internal/script"
)

// ScriptUseCase serves rendered tracking scripts for deployed campaigns.
// Scripts are looked up by the script URL minted when the campaign was
// created; inactive campaigns stop serving immediately.
type ScriptUseCase struct {
	repo     port.TrackingRepository
	renderer *script.Renderer
}

// NewScriptUseCase creates the usecase.
func NewScriptUseCase(repo port.TrackingRepository, renderer *script.Renderer) *ScriptUseCase {
	return &ScriptUseCase{repo: repo, renderer: renderer}
}

// RenderScript renders and obfuscates the script behind the given id. The
// id is the raw path segment; a ".js" suffix is tolerated.
func (u *ScriptUseCase) RenderScript(ctx context.Context, scriptID string) (string, error) {
	camp, err := u.findByID(ctx, scriptID)
	if err != nil {
		return "", err
	}
	return u.renderer.Render(camp)
}

// ScriptInfo returns campaign details behind a script id, for debugging
// deployed snippets.
func (u *ScriptUseCase) ScriptInfo(ctx context.Context, scriptID string) (*port.ScriptInfoResp, error) {
	camp, err := u.findByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	return &port.ScriptInfoResp{
		CampaignName: camp.Name,
		Casino:       camp.Casino,
		TemplateType: camp.TemplateConfig.TemplateType,
		Stats:        camp.Stats,
		CreatedAt:    camp.CreatedAt,
	}, nil
}

func (u *ScriptUseCase) findByID(ctx context.Context, scriptID string) (*domain.Campaign, error) {
	id := strings.TrimSuffix(scriptID, ".js")
	camp, err := u.repo.FindActiveCampaignByScript(ctx, fmt.Sprintf("/scripts/%s.js", id))
	if err != nil {
		return nil, fmt.Errorf("find campaign by script: %w", err)
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}
	return camp, nil
}
