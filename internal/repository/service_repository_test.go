package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"travel-go/service-api/internal/models"
)

const serviceNS = "travelGo." + serviceCollection

func TestServiceRepository_GetAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("applies limit", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, serviceNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Cox's Bazar"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Sajek Valley"}},
		))

		services, err := repo.GetAll(context.Background(), 2)
		require.NoError(mt, err)
		require.Len(mt, services, 2)
		assert.Equal(mt, "Cox's Bazar", services[0]["name"])
		assert.Equal(mt, "Sajek Valley", services[1]["name"])

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, int64(2), evt.Command.Lookup("limit").Int64())
	})

	mt.Run("no limit when zero", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, serviceNS, mtest.FirstBatch))

		services, err := repo.GetAll(context.Background(), 0)
		require.NoError(mt, err)
		assert.NotNil(mt, services)
		assert.Empty(mt, services)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		_, err = evt.Command.LookupErr("limit")
		assert.Error(mt, err, "limit must not be sent")
	})

	mt.Run("store error", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "boom",
		}))

		_, err := repo.GetAll(context.Background(), 0)
		assert.Error(mt, err)
	})
}

func TestServiceRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, serviceNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Bandarban"}, {Key: "price", Value: 120.5}},
		))

		service, err := repo.GetByID(context.Background(), id)
		require.NoError(mt, err)
		require.NotNil(mt, service)
		assert.Equal(mt, id, service["_id"])
		assert.Equal(mt, "Bandarban", service["name"])
		assert.Equal(mt, 120.5, service["price"])
	})

	mt.Run("missing is nil without error", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, serviceNS, mtest.FirstBatch))

		service, err := repo.GetByID(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Nil(mt, service)
	})
}

func TestServiceRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns generated id", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := repo.Create(context.Background(), models.Service{"name": "Rangamati", "price": 80})
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		id, ok := res.InsertedID.(primitive.ObjectID)
		require.True(mt, ok)
		assert.False(mt, id.IsZero())
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.Create(context.Background(), models.Service{"name": "Rangamati"})
		assert.Error(mt, err)
	})
}
