package slider

// Observer receives drag transitions synchronously, once per transition.
type Observer interface {
	OnDragBegin(side Side)
	OnDragUpdate(side Side)
	OnDragEnd(side Side)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Begin  func(Side)
	Update func(Side)
	End    func(Side)
}

func (f ObserverFuncs) OnDragBegin(side Side) {
	if f.Begin != nil {
		f.Begin(side)
	}
}

func (f ObserverFuncs) OnDragUpdate(side Side) {
	if f.Update != nil {
		f.Update(side)
	}
}

func (f ObserverFuncs) OnDragEnd(side Side) {
	if f.End != nil {
		f.End(side)
	}
}
