package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
)

func testDataset() *model.Dataset {
	return &model.Dataset{
		Dashboards: []model.Dashboard{
			{ID: "d1", ConfigurationItemBusServName: "payments", ConfigurationItemBusAppName: "checkout"},
			{ID: "d2", ConfigurationItemBusServName: "payments", ConfigurationItemBusAppName: "ledger"},
			{ID: "d3", ConfigurationItemBusServName: "payments", ConfigurationItemBusAppName: "checkout"},
		},
		Components: []model.Component{
			{ID: "c1", CollectorItems: map[model.CollectorType][]model.CollectorItem{
				model.CollectorTypeBuild: {{ID: "1"}, {ID: "2"}},
			}},
		},
		CollectorItems: []model.CollectorItem{
			{ID: "1", CollectorType: model.CollectorTypeBuild},
			{ID: "2", CollectorType: model.CollectorTypeBuild},
			{ID: "3", CollectorType: model.CollectorTypeTest},
		},
	}
}

func TestFindOne(t *testing.T) {
	s, err := NewFromDataset(testDataset())
	require.NoError(t, err)

	c, err := s.FindOne(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "c1", c.ID)

	missing, err := s.FindOne(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindAll(t *testing.T) {
	s, err := NewFromDataset(testDataset())
	require.NoError(t, err)

	items, err := s.FindAll(context.Background(), []string{"3", "missing", "1", "3"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, "1", items[1].ID)

	none, err := s.FindAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindAllByBusinessServiceAndBusinessApplication(t *testing.T) {
	s, err := NewFromDataset(testDataset())
	require.NoError(t, err)

	got, err := s.FindAllByBusinessServiceAndBusinessApplication(context.Background(), "payments", "checkout")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d1", got[0].ID)
	assert.Equal(t, "d3", got[1].ID)

	got, err = s.FindAllByBusinessServiceAndBusinessApplication(context.Background(), "payments", "Checkout")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSeedReplacesInPlace(t *testing.T) {
	s, err := NewFromDataset(testDataset())
	require.NoError(t, err)

	err = s.Seed(context.Background(), &model.Dataset{
		Dashboards: []model.Dashboard{
			{ID: "d1", Title: "updated", ConfigurationItemBusServName: "payments", ConfigurationItemBusAppName: "checkout"},
		},
	})
	require.NoError(t, err)

	got, err := s.FindAllByBusinessServiceAndBusinessApplication(context.Background(), "payments", "checkout")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "updated", got[0].Title)
}

func TestSeedRejectsInvalidDataset(t *testing.T) {
	s := New()
	err := s.Seed(context.Background(), &model.Dataset{
		CollectorItems: []model.CollectorItem{{ID: "1"}, {ID: "1"}},
	})
	assert.Error(t, err)
	assert.NoError(t, s.Seed(context.Background(), nil))
}

func TestPutAndDeleteCollectorItem(t *testing.T) {
	s := New()
	s.PutCollectorItem(model.CollectorItem{ID: "9", AltIdentifier: "svc"})

	items, err := s.FindAll(context.Background(), []string{"9"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "svc", items[0].AltIdentifier)

	s.DeleteCollectorItem("9")
	items, err = s.FindAll(context.Background(), []string{"9"})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, s.Close(context.Background()))
}
