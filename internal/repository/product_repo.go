package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vijay-72-CMK/product-microservice/internal/models"
)

const queryTimeout = 5 * time.Second

// ProductRepository exposes the product collection: point reads, unpaginated
// listing, upsert by id, delete with affected count, and the paged search
// aggregation.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed hex id cannot match any document.
		return nil, ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var product models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll returns the full collection, unfiltered and unpaginated. Callers
// needing pages go through SearchPage instead.
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Save upserts by id. A zero id means a new document: the store assigns the
// identity and the returned product carries it along with the creation time.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if product.ID.IsZero() {
		if product.CreatedAt.IsZero() {
			product.CreatedAt = time.Now()
		}
		res, err := r.col.InsertOne(ctx, product)
		if err != nil {
			return nil, err
		}
		product.ID = res.InsertedID.(primitive.ObjectID)
		return product, nil
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteByID returns the number of documents removed: 0 when no document had
// that id, 1 when deleted. The caller maps 0 to a not-found failure.
func (r *ProductRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// SearchPage runs filter, sort, skip/limit and the un-paginated match count
// as one aggregation so the page and the count reflect the same snapshot.
func (r *ProductRepository) SearchPage(ctx context.Context, filter bson.M, sort bson.D, page, size int64) (*models.PagedResult, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Aggregate(ctx, searchPipeline(filter, sort, page, size))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := &models.PagedResult{Products: make([]models.Product, 0)}
	if cursor.Next(ctx) {
		if err := cursor.Decode(result); err != nil {
			return nil, err
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if result.Products == nil {
		result.Products = make([]models.Product, 0)
	}
	return result, nil
}

// searchPipeline builds $match -> $facet -> $project. The facet stage fetches
// the requested page while counting all matches in the same operation; the
// projection lifts the count out of its single-element facet array (absent
// when nothing matched, which decodes as zero).
func searchPipeline(filter bson.M, sort bson.D, page, size int64) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$facet", Value: bson.D{
			{Key: "products", Value: bson.A{
				bson.D{{Key: "$sort", Value: sort}},
				bson.D{{Key: "$skip", Value: page * size}},
				bson.D{{Key: "$limit", Value: size}},
			}},
			{Key: "countFacet", Value: bson.A{
				bson.D{{Key: "$count", Value: "count"}},
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "products", Value: 1},
			{Key: "totalCount", Value: bson.D{
				{Key: "$arrayElemAt", Value: bson.A{"$countFacet.count", 0}},
			}},
		}}},
	}
}
