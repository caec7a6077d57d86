package montgomery25519

import (
	"testing"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdwards(t *testing.T) {
	spec.Run(t, "Edwards", func(t *testing.T, when spec.G, it spec.S) {
		g := edwards25519.NewGeneratorPoint()

		it("maps the base point to the generator", func() {
			p, err := Basepoint.Edwards(0)
			require.NoError(t, err)
			assert.Equal(t, 1, p.Equal(g))
		})

		it("maps the base point with sign 1 to the negated generator", func() {
			p, err := Basepoint.Edwards(1)
			require.NoError(t, err)
			assert.Equal(t, 1, p.Equal(new(edwards25519.Point).Negate(g)))
		})

		it("maps the generator to the base point", func() {
			assert.Equal(t, Basepoint, *new(MontgomeryPoint).SetEdwards(g))
		})

		it("round trips random points up to sign", func() {
			for range 100 {
				m, p := randomPoint(t)

				q, err := m.Edwards(0)
				require.NoError(t, err)
				r, err := m.Edwards(1)
				require.NoError(t, err)

				assert.Equal(t, 1, q.Equal(p)|r.Equal(p))
				assert.Equal(t, 1, r.Equal(new(edwards25519.Point).Negate(q)))
				assert.Equal(t, *m, *new(MontgomeryPoint).SetEdwards(q))
			}
		})

		when("the point is on the twist", func() {
			it("rejects u = 2", func() {
				two := MontgomeryPoint{2}
				p, err := two.Edwards(0)
				assert.Error(t, err)
				assert.False(t, errors.Is(err, ErrTwistPoint))
				assert.Nil(t, p)
			})

			it("rejects u = -1 before inversion", func() {
				var minusOne MontgomeryPoint
				_NegOne.FillBytes(minusOne[:])

				for _, sign := range []int{0, 1} {
					p, err := minusOne.Edwards(sign)
					assert.ErrorIs(t, err, ErrTwistPoint)
					assert.Nil(t, p)
				}
			})

			it("rejects non-canonical u = -1", func() {
				// p - 1 with the ignored top bit set
				minusOne := mustDecodePoint("ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
				_, err := minusOne.Edwards(0)
				assert.ErrorIs(t, err, ErrTwistPoint)
			})

			it("rejects random twist points", func() {
				for range 20 {
					_, err := randomTwistPoint(t).Edwards(0)
					assert.Error(t, err)
				}
			})
		})

		when("converting the identity", func() {
			it("maps the Edwards identity to u = 0", func() {
				id := edwards25519.NewIdentityPoint()
				assert.Equal(t, Identity, *new(MontgomeryPoint).SetEdwards(id))
			})

			it("maps u = 0 to the point of order two", func() {
				p, err := Identity.Edwards(0)
				require.NoError(t, err)

				two := new(edwards25519.Point).Add(p, p)
				assert.Equal(t, 1, two.Equal(edwards25519.NewIdentityPoint()))
				assert.Equal(t, 0, p.Equal(edwards25519.NewIdentityPoint()))
			})
		})
	}, spec.Report(report.Terminal{}))
}
