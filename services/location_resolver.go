package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/repositories"
)

const (
	ErrInvalidLocation      ValidationError = "geçersiz konum"
	ErrLocationInconsistent ValidationError = "konum alanları aynı hiyerarşiye ait değil"
	ErrLocationInactive     ValidationError = "konum bulunamadı veya pasif"
)

// LocationFields arıza girdisindeki konum alanlarıdır. Ya "location" nesnesi ya da
// eski tip kimlik alanları gönderilir; ikisi birlikte gelirse tutarlı olmalıdır.
type LocationFields struct {
	Location     *models.LocationRef `json:"location"`
	SiteID       *uint               `json:"siteId"`
	BlockID      *uint               `json:"blockId"`
	FloorID      *uint               `json:"floorId"`
	ApartmentID  *uint               `json:"apartmentId"`
	FloorAreaID  *uint               `json:"floorAreaId"`
	CommonAreaID *uint               `json:"commonAreaId"`
}

func (f LocationFields) legacy() map[models.LocationKind]uint {
	out := map[models.LocationKind]uint{}
	add := func(k models.LocationKind, id *uint) {
		if id != nil && *id != 0 {
			out[k] = *id
		}
	}
	add(models.LocationSite, f.SiteID)
	add(models.LocationBlock, f.BlockID)
	add(models.LocationFloor, f.FloorID)
	add(models.LocationApartment, f.ApartmentID)
	add(models.LocationFloorArea, f.FloorAreaID)
	add(models.LocationCommonArea, f.CommonAreaID)
	return out
}

// IsEmpty hiçbir konum alanı gönderilmediyse true döner.
func (f LocationFields) IsEmpty() bool {
	return f.Location == nil && len(f.legacy()) == 0
}

// Ref en özel konumu seçer. Dönen map, seçilenin ataları olması gereken diğer kimliklerdir.
func (f LocationFields) Ref() (models.LocationRef, map[models.LocationKind]uint, error) {
	ids := f.legacy()
	if f.Location != nil && !f.Location.IsZero() {
		if !f.Location.Kind.Valid() || f.Location.ID == 0 {
			return models.LocationRef{}, nil, fmt.Errorf("%w: %q", ErrInvalidLocation, f.Location.Kind)
		}
		ref := *f.Location
		if id, ok := ids[ref.Kind]; ok && id != ref.ID {
			return models.LocationRef{}, nil, ErrLocationInconsistent
		}
		delete(ids, ref.Kind)
		return ref, ids, nil
	}
	if len(ids) == 0 {
		return models.LocationRef{}, nil, nil
	}

	_, hasApt := ids[models.LocationApartment]
	_, hasArea := ids[models.LocationFloorArea]
	if hasApt && hasArea {
		return models.LocationRef{}, nil, ErrLocationInconsistent
	}
	if _, ok := ids[models.LocationCommonArea]; ok {
		for _, k := range []models.LocationKind{models.LocationBlock, models.LocationFloor, models.LocationApartment, models.LocationFloorArea} {
			if _, clash := ids[k]; clash {
				return models.LocationRef{}, nil, ErrLocationInconsistent
			}
		}
	}

	for _, k := range []models.LocationKind{
		models.LocationApartment, models.LocationFloorArea, models.LocationCommonArea,
		models.LocationFloor, models.LocationBlock, models.LocationSite,
	} {
		if id, ok := ids[k]; ok {
			delete(ids, k)
			return models.LocationRef{Kind: k, ID: id}, ids, nil
		}
	}
	return models.LocationRef{}, nil, nil
}

// ResolvedLocation hiyerarşide yürünerek çözülmüş konumdur.
type ResolvedLocation struct {
	Ref     models.LocationRef
	SiteID  *uint
	BlockID *uint
	Path    string
	chain   map[models.LocationKind]uint
}

type locationNode struct {
	label  string
	parent models.LocationRef
	active bool
}

// LocationCache tek bir çağrı boyunca çözülen düğümleri tutar.
type LocationCache map[models.LocationRef]*locationNode

// ILocationResolver konum referanslarını doğrular ve görünen yola çevirir.
type ILocationResolver interface {
	Resolve(ctx context.Context, fields LocationFields) (*ResolvedLocation, error)
	Path(ctx context.Context, ref models.LocationRef, cache LocationCache) string
}

type LocationResolver struct {
	sites       repositories.ISiteRepository
	blocks      repositories.IBlockRepository
	floors      repositories.IFloorRepository
	apartments  repositories.IApartmentRepository
	floorAreas  repositories.IFloorAreaRepository
	commonAreas repositories.ICommonAreaRepository
}

func NewLocationResolver(
	sites repositories.ISiteRepository,
	blocks repositories.IBlockRepository,
	floors repositories.IFloorRepository,
	apartments repositories.IApartmentRepository,
	floorAreas repositories.IFloorAreaRepository,
	commonAreas repositories.ICommonAreaRepository,
) *LocationResolver {
	return &LocationResolver{
		sites: sites, blocks: blocks, floors: floors,
		apartments: apartments, floorAreas: floorAreas, commonAreas: commonAreas,
	}
}

// Resolve girdideki konumu seçer, tüm zincirin var ve aktif olduğunu, verilen diğer
// kimliklerin zincirle tutarlı olduğunu doğrular. Konum yoksa nil döner.
func (r *LocationResolver) Resolve(ctx context.Context, fields LocationFields) (*ResolvedLocation, error) {
	ref, ancestors, err := fields.Ref()
	if err != nil {
		return nil, err
	}
	if ref.IsZero() {
		return nil, nil
	}

	cache := LocationCache{}
	resolved := &ResolvedLocation{Ref: ref, chain: map[models.LocationKind]uint{}}
	var labels []string
	for cur := ref; !cur.IsZero(); {
		node, err := r.node(ctx, cur, cache)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %d", ErrLocationInactive, cur.Kind, cur.ID)
		}
		if err != nil {
			return nil, err
		}
		if !node.active {
			return nil, fmt.Errorf("%w: %s %d", ErrLocationInactive, cur.Kind, cur.ID)
		}
		resolved.chain[cur.Kind] = cur.ID
		labels = append([]string{node.label}, labels...)
		cur = node.parent
	}

	for kind, id := range ancestors {
		if resolved.chain[kind] != id {
			return nil, fmt.Errorf("%w: %s %d", ErrLocationInconsistent, kind, id)
		}
	}

	if id, ok := resolved.chain[models.LocationSite]; ok {
		resolved.SiteID = &id
	}
	if id, ok := resolved.chain[models.LocationBlock]; ok {
		resolved.BlockID = &id
	}
	resolved.Path = strings.Join(labels, " > ")
	return resolved, nil
}

// Path konumun "Site > Blok > Kat > Daire 101" biçimindeki yolunu döndürür.
// Pasif düğümler de gösterilir; çözülemeyen konum için "-" döner.
func (r *LocationResolver) Path(ctx context.Context, ref models.LocationRef, cache LocationCache) string {
	if ref.IsZero() {
		return "-"
	}
	if cache == nil {
		cache = LocationCache{}
	}
	var labels []string
	for cur := ref; !cur.IsZero(); {
		node, err := r.node(ctx, cur, cache)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				configslog.Log.Warn("Konum yolu çözülemedi", zap.String("kind", string(cur.Kind)), zap.Uint("id", cur.ID), zap.Error(err))
			}
			break
		}
		labels = append([]string{node.label}, labels...)
		cur = node.parent
	}
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, " > ")
}

func (r *LocationResolver) node(ctx context.Context, ref models.LocationRef, cache LocationCache) (*locationNode, error) {
	if n, ok := cache[ref]; ok {
		return n, nil
	}
	var n *locationNode
	switch ref.Kind {
	case models.LocationSite:
		s, err := r.sites.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		n = &locationNode{label: s.Name, active: s.IsActive}
	case models.LocationBlock:
		b, err := r.blocks.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		n = &locationNode{label: b.Name, active: b.IsActive, parent: models.LocationRef{Kind: models.LocationSite, ID: b.SiteID}}
	case models.LocationFloor:
		f, err := r.floors.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		n = &locationNode{label: f.Name, active: f.IsActive, parent: models.LocationRef{Kind: models.LocationBlock, ID: f.BlockID}}
	case models.LocationApartment:
		a, err := r.apartments.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		n = &locationNode{label: "Daire " + a.Number, active: a.IsActive, parent: models.LocationRef{Kind: models.LocationFloor, ID: a.FloorID}}
	case models.LocationFloorArea:
		fa, err := r.floorAreas.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		n = &locationNode{label: fa.Name, active: fa.IsActive, parent: models.LocationRef{Kind: models.LocationFloor, ID: fa.FloorID}}
	case models.LocationCommonArea:
		ca, err := r.commonAreas.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		n = &locationNode{label: ca.Name, active: ca.IsActive, parent: models.LocationRef{Kind: models.LocationSite, ID: ca.SiteID}}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, ref.Kind)
	}
	cache[ref] = n
	return n, nil
}

var _ ILocationResolver = (*LocationResolver)(nil)
