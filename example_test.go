package montgomery25519_test

import (
	"crypto/rand"
	"fmt"

	"github.com/AlexanderYastrebov/montgomery25519"
	"github.com/AlexanderYastrebov/montgomery25519/field"
)

func ExampleMontgomeryPoint_ScalarMultClamped() {
	var alice, bob [32]byte
	rand.Read(alice[:])
	rand.Read(bob[:])

	var alicePublic, bobPublic montgomery25519.MontgomeryPoint
	alicePublic.ScalarBaseMultClamped(&alice)
	bobPublic.ScalarBaseMultClamped(&bob)

	var aliceShared, bobShared montgomery25519.MontgomeryPoint
	aliceShared.ScalarMultClamped(&alice, &bobPublic)
	bobShared.ScalarMultClamped(&bob, &alicePublic)

	fmt.Println(aliceShared == bobShared)
	// Output:
	// true
}

func ExampleMontgomeryPoint_SetElligator2() {
	var b [32]byte
	for i := range b {
		b[i] = byte(i)
	}
	r, _ := new(field.Element).SetBytes(b[:])

	p := new(montgomery25519.MontgomeryPoint).SetElligator2(r)
	fmt.Println(p)
	// Output:
	// 5f3520001c6c9936a31206afe7c7ac224e8861619bf98872444915899d95f46e
}

func ExampleScalarMultClampedBatch() {
	var scalars [4][32]byte
	points := [4]montgomery25519.MontgomeryPoint{
		montgomery25519.Basepoint, montgomery25519.Basepoint,
		montgomery25519.Basepoint, montgomery25519.Basepoint,
	}
	for j := range scalars {
		rand.Read(scalars[j][:])
	}

	var dst [4]montgomery25519.MontgomeryPoint
	montgomery25519.ScalarMultClampedBatch(field.DefaultBatcher(), &dst, &scalars, &points)

	for j := range dst {
		fmt.Println(dst[j] == *new(montgomery25519.MontgomeryPoint).ScalarBaseMultClamped(&scalars[j]))
	}
	// Output:
	// true
	// true
	// true
	// true
}
