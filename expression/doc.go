/*
Package expression compiles declarative query conditions into DynamoDB
expression strings with collision-free placeholder substitution.

Every attribute name and literal operand is referenced through an opaque
placeholder token, which protects against reserved-word collisions and
injection. Two tables hold the substitutions for one request:

  - NameTable mints #_a0, #_a1, ... and reuses a token when the same
    attribute name reappears in a later compile step.
  - ValueTable mints :_a0, :_a1, ... and never reuses a token, even for
    equal literals.

The tables are plain values owned by the request builder and threaded through
the key-condition, filter, and projection compile calls of a single request:

	names := expression.NewNameTable()
	values := expression.NewValueTable()

	key := expression.NewConditionSet().
	    Add("UserId", expression.Eq("u-17")).
	    Add("CreatedAt", expression.Gte(since), expression.Lte(until))

	keyExpr, err := expression.Compile(key, names, values)
	// "#_a0 = :_a0 AND #_a1 >= :_a1 AND #_a1 <= :_a2"

	proj := expression.CompileProjection([]string{"UserId", "Total"}, names)
	// "#_a0, #_a2"

Empty condition sets compile to the empty string, which the request builder
treats as "omit this field".
*/
package expression
