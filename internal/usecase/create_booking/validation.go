package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CategoryID <= 0 {
		return fmt.Errorf("%w: categoryID must be positive", ErrInvalidInput)
	}

	if req.TownID <= 0 {
		return fmt.Errorf("%w: townID must be positive", ErrInvalidInput)
	}

	if req.SubSectionID != nil && *req.SubSectionID <= 0 {
		return fmt.Errorf("%w: subSectionID must be positive", ErrInvalidInput)
	}

	for _, addonID := range req.AddonIDs {
		if addonID <= 0 {
			return fmt.Errorf("%w: addonID must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidTime, err)
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if len(req.Photos) > domain.MaxPhotos {
		return fmt.Errorf("%w: too many photos: max=%d", ErrInvalidInput, domain.MaxPhotos)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	return nil
}

// validateSubSection проверяет, что подраздел принадлежит категории
func validateSubSection(category *domain.ServiceCategory, subSectionID *int64) error {
	if subSectionID == nil {
		return nil
	}

	for _, sub := range category.SubSections {
		if sub.ID == *subSectionID {
			return nil
		}
	}

	return ErrSubSectionNotFound
}

// validateAddons проверяет, что все дополнительные услуги принадлежат категории
func validateAddons(category *domain.ServiceCategory, addonIDs []int64) error {
	for _, addonID := range addonIDs {
		found := false
		for _, addon := range category.Addons {
			if addon.ID == addonID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: addonID=%d", ErrAddonNotFound, addonID)
		}
	}

	return nil
}
