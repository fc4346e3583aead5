// Copyright 2020 Aleksandr Demakin. All rights reserved.

package radix

import (
	"fmt"
)

func ExampleConvert() {
	hex, err := Convert("340282366920938463463374607431768211455", Decimal, Hex)
	if err != nil {
		panic(err)
	}
	fmt.Println(hex)

	b64, err := Convert(hex, Hex, Base64)
	if err != nil {
		panic(err)
	}
	fmt.Println(b64)

	_, err = Convert("12G", Hex, Decimal)
	fmt.Println(err)

	// Output:
	// ffffffffffffffffffffffffffffffff
	// D/////////////////////
	// invalid digit 'G' at pos 3
}

func ExampleValue() {
	v, err := Parse("BA", Base64)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s in base 64 is %s in base 10, %s in base 2\n", v, v.In(Decimal), v.In(Binary))
	fmt.Println(Encode(Nat{}, Base64), Encode(Nat{}, Hex))

	// Output:
	// BA in base 64 is 64 in base 10, 1000000 in base 2
	// A 0
}
