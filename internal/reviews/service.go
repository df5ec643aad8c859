package reviews

import (
	"context"
	"fmt"
	"math"
	"time"

	"voyago/internal/bookings"
	"voyago/internal/shared/constants"
	"voyago/internal/users"
	"voyago/pkg/cache"
	"voyago/pkg/logger"

	"github.com/google/uuid"
)

// BookingVerifier checks whether a user actually booked the reviewed item.
// Satisfied by the bookings service.
type BookingVerifier interface {
	HasConfirmedBooking(ctx context.Context, userID uuid.UUID, itemID string, bookingType bookings.BookingType) (bool, error)
}

// ProfileProvider resolves reviewer display names. Satisfied by the users service.
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID string) (*users.User, error)
}

// Service interface defines the contract for review business logic
type Service interface {
	CreateReview(ctx context.Context, req CreateReviewRequest) (*Review, error)
	GetReviews(ctx context.Context, itemID, itemType, sort string) (*ReviewListResponse, error)
	MarkHelpful(ctx context.Context, reviewID uuid.UUID, userID string) (*Review, error)
	FlagReview(ctx context.Context, reviewID uuid.UUID, reason string) (*Review, error)
	AddBusinessReply(ctx context.Context, reviewID uuid.UUID, reply string) (*Review, error)
	GetRatingSummary(ctx context.Context, itemID, itemType string) (*RatingSummary, error)
}

type service struct {
	repo     Repository
	verifier BookingVerifier
	profiles ProfileProvider
	cache    cache.Service
	log      *logger.Logger
}

// NewService creates a new review service instance
func NewService(repo Repository, verifier BookingVerifier, profiles ProfileProvider, cacheService cache.Service) Service {
	return &service{
		repo:     repo,
		verifier: verifier,
		profiles: profiles,
		cache:    cacheService,
		log:      logger.GetDefault(),
	}
}

// CreateReview stores a review, marking it verified when the reviewer has a
// confirmed booking for the item.
func (s *service) CreateReview(ctx context.Context, req CreateReviewRequest) (*Review, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	bookingType := bookings.BookingType(req.ItemType)
	if !bookingType.IsValid() {
		return nil, fmt.Errorf("invalid item type: %s", req.ItemType)
	}

	userName := ""
	if s.profiles != nil {
		profile, err := s.profiles.GetProfile(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve reviewer: %w", err)
		}
		userName = profile.FullName()
	}

	verified := false
	if s.verifier != nil {
		verified, err = s.verifier.HasConfirmedBooking(ctx, userID, req.ItemID, bookingType)
		if err != nil {
			// Verification is best effort; the review still posts unverified
			s.log.ErrorWithContext(ctx, "failed to verify booking for review", err, map[string]interface{}{
				"user_id": req.UserID,
				"item_id": req.ItemID,
			})
			verified = false
		}
	}

	review := &Review{
		ItemID:          req.ItemID,
		ItemType:        req.ItemType,
		UserID:          userID,
		UserName:        userName,
		Rating:          req.Rating,
		Title:           req.Title,
		Comment:         req.Comment,
		Photos:          req.Photos,
		VerifiedBooking: verified,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateItem(ctx)
	return review, nil
}

// GetReviews lists an item's reviews sorted by recency or helpfulness.
func (s *service) GetReviews(ctx context.Context, itemID, itemType, sort string) (*ReviewListResponse, error) {
	if itemID == "" || itemType == "" {
		return nil, fmt.Errorf("item ID and item type are required")
	}
	if sort != SortRecent && sort != SortHelpful {
		sort = SortRecent
	}

	if s.cache != nil {
		var resp ReviewListResponse
		key := constants.BuildReviewsByItemKey(itemID, itemType, sort)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_REVIEWS_LIST, func() (interface{}, error) {
			return s.buildListing(ctx, itemID, itemType, sort)
		}, &resp)
		if err != nil {
			return nil, err
		}
		return &resp, nil
	}

	return s.buildListing(ctx, itemID, itemType, sort)
}

func (s *service) buildListing(ctx context.Context, itemID, itemType, sort string) (*ReviewListResponse, error) {
	reviews, err := s.repo.GetByItem(ctx, itemID, itemType, sort)
	if err != nil {
		return nil, err
	}
	return &ReviewListResponse{
		ItemID:   itemID,
		ItemType: itemType,
		Sort:     sort,
		Count:    len(reviews),
		Reviews:  reviews,
	}, nil
}

// MarkHelpful records a helpful vote. One vote per user per review.
func (s *service) MarkHelpful(ctx context.Context, reviewID uuid.UUID, userID string) (*Review, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	for _, voter := range review.VotedBy {
		if voter == userID {
			return nil, fmt.Errorf("user has already marked this review helpful")
		}
	}

	review.VotedBy = append(review.VotedBy, userID)
	review.HelpfulVotes = len(review.VotedBy)

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateItem(ctx)
	return review, nil
}

// FlagReview marks a review for moderation.
func (s *service) FlagReview(ctx context.Context, reviewID uuid.UUID, reason string) (*Review, error) {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.Flagged = true
	review.FlagReason = &reason

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateItem(ctx)
	return review, nil
}

// AddBusinessReply attaches the business's reply to a review.
func (s *service) AddBusinessReply(ctx context.Context, reviewID uuid.UUID, reply string) (*Review, error) {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	review.BusinessReply = &reply
	review.BusinessReplyAt = &now

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateItem(ctx)
	return review, nil
}

// GetRatingSummary returns the average rating and review count for an item.
func (s *service) GetRatingSummary(ctx context.Context, itemID, itemType string) (*RatingSummary, error) {
	if s.cache != nil {
		var summary RatingSummary
		key := constants.BuildReviewRatingKey(itemID, itemType)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_REVIEW_RATING, func() (interface{}, error) {
			return s.buildSummary(ctx, itemID, itemType)
		}, &summary)
		if err != nil {
			return nil, err
		}
		return &summary, nil
	}

	return s.buildSummary(ctx, itemID, itemType)
}

func (s *service) buildSummary(ctx context.Context, itemID, itemType string) (*RatingSummary, error) {
	average, count, err := s.repo.GetRatingSummary(ctx, itemID, itemType)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{
		ItemID:        itemID,
		ItemType:      itemType,
		AverageRating: math.Round(average*10) / 10,
		ReviewCount:   count,
	}, nil
}

func (s *service) invalidateItem(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_REVIEWS); err != nil {
		s.log.ErrorWithContext(ctx, "failed to invalidate review cache", err, nil)
	}
}
