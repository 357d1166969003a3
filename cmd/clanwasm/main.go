//go:build js && wasm

package main

import "syscall/js"

func main() {
	js.Global().Set("__clanReplay", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return mustJSON(requestError("invalid_request", "missing request payload"))
		}
		return mustJSON(handleReplay(args[0].String()))
	}))

	svc := newService()
	api := js.Global().Get("Object").New()
	bind := func(name string, arity int, fn func(args []js.Value) string) {
		api.Set(name, js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) < arity {
				return mustJSON(result{Error: name + ": missing arguments"})
			}
			return fn(args)
		}))
	}

	bind("createClan", 2, func(args []js.Value) string {
		return resultOf(svc.createClan(args[0].Int(), int64(args[1].Int())))
	})
	bind("stats", 0, func([]js.Value) string { return resultOf(svc.stats()) })
	bind("dragons", 0, func([]js.Value) string { return resultOf(svc.dragons()) })
	bind("addRandomDragon", 0, func([]js.Value) string { return resultOf(svc.addRandomDragon()) })
	bind("addDragon", 3, func(args []js.Value) string {
		return resultOf(svc.addDragon(args[0].String(), args[1].String(), args[2].Int()))
	})
	bind("removeDragon", 1, func(args []js.Value) string { return resultOf(svc.removeDragon(args[0].Int())) })
	bind("simulate", 1, func(args []js.Value) string { return resultOf(svc.simulate(args[0].Int())) })
	bind("relationship", 2, func(args []js.Value) string {
		return resultOf(svc.relationship(args[0].Int(), args[1].Int()))
	})
	bind("subscribe", 2, func(args []js.Value) string {
		callback := args[1]
		return resultOf(svc.subscribe(args[0].String(), func(ev string) { callback.Invoke(ev) }))
	})
	bind("unsubscribe", 1, func(args []js.Value) string { return resultOf(svc.unsubscribe(args[0].Int()), nil) })
	bind("dragonName", 2, func(args []js.Value) string {
		return resultOf(generateDragonName(args[0].String(), int64(args[1].Int())))
	})
	bind("clanName", 1, func(args []js.Value) string {
		return resultOf(generateClanName(int64(args[0].Int())), nil)
	})
	js.Global().Set("__clan", api)

	select {}
}
