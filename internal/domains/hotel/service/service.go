package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"drivent/config"
	"drivent/infras/otel"
	"drivent/internal/domains/hotel/model"
	"drivent/internal/domains/hotel/model/dto"
	"drivent/internal/domains/hotel/repository"
	roomModel "drivent/internal/domains/room/model"
	roomRepo "drivent/internal/domains/room/repository"
	ticketService "drivent/internal/domains/ticket/service"
	"drivent/shared"
	"drivent/shared/cache"
	"drivent/shared/constant"
	gDto "drivent/shared/dto"
	"drivent/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel    = "hotel:get"
	cacheGetAllHotel = "hotel:gets"
)

type Hotel interface {
	GetAll(ctx context.Context, userID int, params gDto.QueryParams) ([]dto.HotelResponse, error)
	Get(ctx context.Context, userID, hotelID int) (dto.HotelWithRoomsResponse, error)
}

type serviceImpl struct {
	repo     repository.Hotel
	roomRepo roomRepo.Room
	ticket   ticketService.Ticket
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Hotel, roomRepo roomRepo.Room, ticket ticketService.Ticket, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		ticket:   ticket,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, userID int, params gDto.QueryParams) (res []dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ticket.Eligibility(ctx, userID); err != nil {
		return res, err // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	hotels, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	if len(hotels) == 0 {
		return res, failure.NotFound("hotels not found") // nolint:wrapcheck
	}

	res = dto.FromModels(hotels)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, hotelID int) (res dto.HotelWithRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ticket.Eligibility(ctx, userID); err != nil {
		return res, err // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetHotel, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(hotelID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int("hotel_id", hotelID).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == 0 {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.TableName + "." + roomModel.FieldID, SortDir: gDto.SortDirAsc},
		shared.FilterByID(hotelID, roomModel.FieldHotelID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Int("hotel_id", hotelID).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModel(hotel, rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}
