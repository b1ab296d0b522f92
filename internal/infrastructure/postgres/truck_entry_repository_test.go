package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeEscaper_NeutralizaCuringas(t *testing.T) {
	assert.Equal(t, `ABC\%1234`, likeEscaper.Replace("ABC%1234"))
	assert.Equal(t, `Jo\_o`, likeEscaper.Replace("Jo_o"))
	assert.Equal(t, `Fazenda\\Sul`, likeEscaper.Replace(`Fazenda\Sul`))
}

func TestLikeEscaper_TermoComumNaoMuda(t *testing.T) {
	assert.Equal(t, "ABC-1234", likeEscaper.Replace("ABC-1234"))
	assert.Equal(t, "Fazenda Boa Vista", likeEscaper.Replace("Fazenda Boa Vista"))
}
