/*
Package paillier is a pure Go implementation of the Paillier additively homomorphic
cryptosystem. It provides key generation, encryption, standard and CRT decryption and
homomorphic evaluation in [github.com/tuneinsight/paillier/schemes/paillier], over any
big-integer backend implementing [github.com/tuneinsight/paillier/utils/bignum.Integer],
and the encoding of signed integers, fixed-point numbers and packed vectors in
[github.com/tuneinsight/paillier/he/codec].
*/
package paillier
