package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"brigade-taxonomy-be/internal/constant"
	"brigade-taxonomy-be/internal/dto"
	"brigade-taxonomy-be/internal/pkg/logger"
	"brigade-taxonomy-be/internal/pkg/serverutils"
	"brigade-taxonomy-be/internal/repository/memory"
	"brigade-taxonomy-be/internal/selection"
	"brigade-taxonomy-be/pkg/events"
	pktNats "brigade-taxonomy-be/pkg/nats"

	"github.com/google/uuid"
)

type ISelectionService interface {
	GetAll(ctx context.Context, sessionID uuid.UUID) map[string]*dto.GetSelectionResponse
	Get(ctx context.Context, sessionID uuid.UUID, taxonomyName string) (*dto.GetSelectionResponse, error)
	Select(ctx context.Context, sessionID uuid.UUID, taxonomyName string, req *dto.SelectItemRequest) (*dto.SelectItemResponse, error)
	Unselect(ctx context.Context, sessionID uuid.UUID, taxonomyName string, req *dto.UnselectItemRequest) (*dto.SelectItemResponse, error)
	View(ctx context.Context, sessionID uuid.UUID, taxonomyName string) (*dto.SelectionViewResponse, error)
}

type selectionService struct {
	selectionRepo    *memory.SelectionRepository
	publisherService IPublisherService
	natsPub          *pktNats.Publisher
	logger           logger.ILogger
}

func NewSelectionService(
	selectionRepo *memory.SelectionRepository,
	publisherService IPublisherService,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) ISelectionService {
	return &selectionService{
		selectionRepo:    selectionRepo,
		publisherService: publisherService,
		natsPub:          natsPub,
		logger:           log,
	}
}

func (s *selectionService) GetAll(ctx context.Context, sessionID uuid.UUID) map[string]*dto.GetSelectionResponse {
	state := s.selectionRepo.GetOrCreate(sessionID)

	out := make(map[string]*dto.GetSelectionResponse, len(constant.KnownTaxonomies))
	for name, sections := range state.Snapshot() {
		out[name] = toSelectionResponse(name, sections)
	}
	return out
}

func (s *selectionService) Get(ctx context.Context, sessionID uuid.UUID, taxonomyName string) (*dto.GetSelectionResponse, error) {
	state := s.selectionRepo.GetOrCreate(sessionID)

	sections, err := state.Sections(taxonomyName)
	if err != nil {
		return nil, translateSelectionErr(taxonomyName, err)
	}
	return toSelectionResponse(taxonomyName, sections), nil
}

func (s *selectionService) Select(ctx context.Context, sessionID uuid.UUID, taxonomyName string, req *dto.SelectItemRequest) (*dto.SelectItemResponse, error) {
	state := s.selectionRepo.GetOrCreate(sessionID)

	changed, err := state.SelectItem(taxonomyName, req.SectionName, req.SectionTitle, req.ItemName)
	if err != nil {
		return nil, translateSelectionErr(taxonomyName, err)
	}

	if changed {
		s.notifyChange(ctx, sessionID, taxonomyName, req.SectionName, req.ItemName, events.TypeItemSelected)
	}
	return &dto.SelectItemResponse{Changed: changed}, nil
}

func (s *selectionService) Unselect(ctx context.Context, sessionID uuid.UUID, taxonomyName string, req *dto.UnselectItemRequest) (*dto.SelectItemResponse, error) {
	state := s.selectionRepo.GetOrCreate(sessionID)

	changed, err := state.UnselectItem(taxonomyName, req.SectionName, req.ItemName)
	if err != nil {
		return nil, translateSelectionErr(taxonomyName, err)
	}

	if changed {
		s.notifyChange(ctx, sessionID, taxonomyName, req.SectionName, req.ItemName, events.TypeItemUnselected)
	}
	return &dto.SelectItemResponse{Changed: changed}, nil
}

func (s *selectionService) View(ctx context.Context, sessionID uuid.UUID, taxonomyName string) (*dto.SelectionViewResponse, error) {
	state := s.selectionRepo.GetOrCreate(sessionID)
	return BuildSelectionView(state, taxonomyName)
}

// notifyChange fans the state change out: the render pipeline recomputes
// the view for connected clients, the event bus records activity.
func (s *selectionService) notifyChange(ctx context.Context, sessionID uuid.UUID, taxonomyName, sectionName, itemName, eventType string) {
	msg := dto.SelectionChangedMessage{
		SessionId: sessionID,
		Taxonomy:  taxonomyName,
	}
	msgJson, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Error("SelectionService", "Failed to publish selection change", map[string]interface{}{
			"session_id": sessionID.String(),
			"taxonomy":   taxonomyName,
			"error":      err.Error(),
		})
	}

	if s.natsPub == nil {
		return
	}
	event := events.NewSelectionEvent(eventType, sessionID.String(), taxonomyName, sectionName, itemName)
	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.logger.Warn("SelectionService", "Failed to publish selection event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func toSelectionResponse(taxonomyName string, sections []selection.Section) *dto.GetSelectionResponse {
	res := &dto.GetSelectionResponse{
		Taxonomy:       taxonomyName,
		ItemsBySection: make(map[string]dto.SelectionSectionResponse, len(sections)),
		SectionOrder:   make([]string, 0, len(sections)),
	}
	for _, sec := range sections {
		res.ItemsBySection[sec.Name] = toSectionResponse(sec)
		res.SectionOrder = append(res.SectionOrder, sec.Name)
	}
	return res
}

func toSectionResponse(sec selection.Section) dto.SelectionSectionResponse {
	items := make([]dto.SelectionItemResponse, 0, len(sec.Items))
	for _, item := range sec.Items {
		items = append(items, dto.SelectionItemResponse{Name: item.Name})
	}
	return dto.SelectionSectionResponse{
		Name:  sec.Name,
		Title: sec.Title,
		Items: items,
	}
}

// BuildSelectionView projects selection state into the rendered list shown
// to the user. Empty section shells are filtered out here, not in state.
func BuildSelectionView(state *selection.State, taxonomyName string) (*dto.SelectionViewResponse, error) {
	sections, err := state.Sections(taxonomyName)
	if err != nil {
		return nil, translateSelectionErr(taxonomyName, err)
	}

	res := &dto.SelectionViewResponse{
		Taxonomy: taxonomyName,
		Sections: make([]dto.SelectionSectionResponse, 0, len(sections)),
	}
	for _, sec := range sections {
		if len(sec.Items) == 0 {
			continue
		}
		res.Sections = append(res.Sections, toSectionResponse(sec))
		res.Total += len(sec.Items)
	}
	return res, nil
}

// translateSelectionErr turns tracker errors into transport-level ones, so
// the HTTP error middleware never has to know about the selection package.
func translateSelectionErr(taxonomyName string, err error) error {
	if errors.Is(err, selection.ErrUnknownTaxonomy) {
		return serverutils.NewNotFoundError(fmt.Sprintf("unknown taxonomy '%s'", taxonomyName))
	}
	return err
}
