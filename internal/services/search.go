package services

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vijay-72-CMK/product-microservice/internal/models"
)

var allowedSortFields = map[string]bool{
	"name":         true,
	"price":        true,
	"brand":        true,
	"categoryName": true,
	"createdAt":    true,
}

const availableSortOptions = "available sorting options: name, price, brand, categoryName, createdAt"

// SplitCSV splits a comma-separated parameter into its non-empty segments.
// An empty input (or one made only of commas) yields an empty slice, which
// filter building treats as "no constraint on this field".
func SplitCSV(raw string) []string {
	values := make([]string, 0)
	for _, segment := range strings.Split(raw, ",") {
		if segment == "" {
			continue
		}
		values = append(values, segment)
	}
	return values
}

// ValidateCriteria checks the sort specification against the allow-list.
// Pagination bounds are enforced at the HTTP boundary.
func ValidateCriteria(criteria models.SearchCriteria) error {
	if !allowedSortFields[criteria.SortBy] {
		return models.InvalidArgumentf("invalid sortBy value: %s. %s", criteria.SortBy, availableSortOptions)
	}
	direction := strings.ToLower(criteria.SortDirection)
	if direction != "asc" && direction != "desc" {
		return models.InvalidArgumentf("direction must only be 'asc' or 'desc'")
	}
	return nil
}

// BuildSearchFilter translates the criteria into a conjunction of predicates
// over the product schema. An empty criteria produces a match-all filter.
func BuildSearchFilter(criteria models.SearchCriteria) bson.M {
	conditions := make([]bson.M, 0)

	if criteria.Keyword != "" {
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"name": bson.M{"$regex": criteria.Keyword, "$options": "i"}},
			{"brand": bson.M{"$regex": criteria.Keyword, "$options": "i"}},
			{"categoryName": bson.M{"$regex": criteria.Keyword, "$options": "i"}},
			{"description": bson.M{"$regex": criteria.Keyword, "$options": "i"}},
			{"tags": bson.M{"$in": []string{criteria.Keyword}}},
		}})
	}

	if len(criteria.Categories) > 0 {
		conditions = append(conditions, bson.M{"categoryName": bson.M{"$in": criteria.Categories}})
	}

	if criteria.MinPrice != nil {
		conditions = append(conditions, bson.M{"price": bson.M{"$gte": *criteria.MinPrice}})
	}
	if criteria.MaxPrice != nil {
		conditions = append(conditions, bson.M{"price": bson.M{"$lte": *criteria.MaxPrice}})
	}

	if len(criteria.BoardSizes) > 0 {
		conditions = append(conditions, bson.M{"boardSize": bson.M{"$in": criteria.BoardSizes}})
	}

	if len(criteria.Brands) > 0 {
		conditions = append(conditions, bson.M{"brand": bson.M{"$in": criteria.Brands}})
	}

	if len(conditions) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": conditions}
}

// BuildSortSpec derives the sort document for the requested field and
// direction and appends an ascending _id tiebreaker, keeping pagination
// stable when the primary sort field has duplicate values.
func BuildSortSpec(sortBy, sortDirection string) bson.D {
	order := 1
	if strings.EqualFold(sortDirection, "desc") {
		order = -1
	}
	return bson.D{
		{Key: sortBy, Value: order},
		{Key: "_id", Value: 1},
	}
}
