package mapper

import (
	"encoding/json"
	"testing"

	"deal-insights-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectMapper_OptionalFieldsSerializeAsNull(t *testing.T) {
	m := NewProjectMapper()
	res := m.ToResponse(&entity.Project{
		Id: 7, Client: "FashionForward", Industry: entity.IndustryRetail, Year: 2024, Status: entity.StatusLost,
	})

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Nil(t, raw["metrics"])
	assert.Nil(t, raw["productOwner"])
	assert.Equal(t, []interface{}{}, raw["strategies"])
	assert.Equal(t, "Lost", raw["status"])
}

func TestProjectMapper_CopiesNestedValues(t *testing.T) {
	m := NewProjectMapper()
	p := &entity.Project{
		Id:           1,
		Strategies:   []string{"Cloud Migration"},
		ProductOwner: &entity.ProductOwner{Name: "Amelia Chen", Email: "amelia.chen@techcorp.com"},
		Metrics:      &entity.Metrics{CostEfficiency: "+35%", TimeSaved: "50%", Satisfaction: "+28 NPS"},
	}

	res := m.ToResponse(p)
	res.Strategies[0] = "changed"

	assert.Equal(t, "Cloud Migration", p.Strategies[0])
	assert.Equal(t, "+35%", res.Metrics.CostEfficiency)
	assert.Equal(t, "amelia.chen@techcorp.com", res.ProductOwner.Email)
}
