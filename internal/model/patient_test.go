package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldNamesCanonicalOrder(t *testing.T) {
	names := FieldNames()

	require.Len(t, names, 30)
	assert.Equal(t, 30, FieldCount)
	assert.Equal(t, "Age", names[0])
	assert.Equal(t, "STDs_Number_of_diagnosis", names[22])
	assert.Equal(t, "Citology", names[29])
}

func TestIsFieldIsCaseSensitive(t *testing.T) {
	assert.True(t, IsField("STDs_HIV"))
	assert.False(t, IsField("stds_hiv"))
	assert.False(t, IsField("Cytology"))
}

func TestValuesAndMissing(t *testing.T) {
	var rec PatientRecord
	require.NoError(t, json.Unmarshal([]byte(`{"Age": 30, "Smokes": 0, "Citology": 1.0}`), &rec))

	values := rec.Values()
	assert.Equal(t, map[string]float64{"Age": 30, "Smokes": 0, "Citology": 1}, values)

	missing := rec.Missing()
	assert.Len(t, missing, 27)
	assert.NotContains(t, missing, "Smokes")
	assert.Equal(t, "Number_of_sexual_partners", missing[0])
}

func TestNewPatientRecordRoundTrip(t *testing.T) {
	in := make(map[string]float64)
	for i, name := range FieldNames() {
		in[name] = float64(i)
	}

	rec, err := NewPatientRecord(in)
	require.NoError(t, err)
	assert.Empty(t, rec.Missing())
	assert.Equal(t, in, rec.Values())

	payload, err := json.Marshal(rec)
	require.NoError(t, err)
	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, in, decoded)
}

func TestNewPatientRecordRejectsUnknownField(t *testing.T) {
	_, err := NewPatientRecord(map[string]float64{"Age": 30, "age": 30})
	assert.Error(t, err)
}
